package dto

// TeamMemberPayload is one roster entry in a team request
type TeamMemberPayload struct {
	Name   string `json:"name" binding:"required"`
	UserID string `json:"userId" binding:"required"`
}

// CreateTeamRequest registers a team with its full roster
type CreateTeamRequest struct {
	TeamName string              `json:"teamName" binding:"required"`
	Members  []TeamMemberPayload `json:"members" binding:"omitempty,dive"`
	Domain   string              `json:"domain" binding:"required"`
}

// UpdateTeamRequest carries the mutable team fields; nil fields are left as-is
type UpdateTeamRequest struct {
	TeamName *string              `json:"teamName,omitempty"`
	Members  *[]TeamMemberPayload `json:"members,omitempty"`
	Domain   *string              `json:"domain,omitempty"`
}
