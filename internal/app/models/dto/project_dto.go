package dto

// SubmitProjectRequest is the owner-facing upsert payload. The same endpoint
// creates the project on first call and merges fields on later calls.
type SubmitProjectRequest struct {
	TeamName    string   `json:"teamName"`
	Domain      string   `json:"domain" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	GithubURL   string   `json:"githubUrl" binding:"required"`
	LiveURL     string   `json:"liveUrl"`
	TechStack   []string `json:"techStack"`
	Status      string   `json:"status" binding:"omitempty,oneof=draft submitted"`
}

// ReviewProjectRequest is the admin-only review payload
type ReviewProjectRequest struct {
	Rating        *int    `json:"rating,omitempty" binding:"omitempty,min=0,max=5"`
	Score         *int    `json:"score,omitempty" binding:"omitempty,min=0,max=100"`
	AdminFeedback *string `json:"adminFeedback,omitempty"`
}
