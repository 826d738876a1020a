package models

import (
	"time"
)

// TeamMember is a single roster entry inside a team
type TeamMember struct {
	Name   string `json:"name"`
	UserID string `json:"userId"`
}

// Team defines the team model. A user may be leader or member of at most
// one team; the service layer checks this on create.
type Team struct {
	ID         string       `json:"id" db:"id"`
	TeamName   string       `json:"teamName" db:"team_name"`
	LeaderID   string       `json:"leaderId" db:"leader_id"`
	LeaderName string       `json:"leaderName" db:"leader_name"`
	Members    []TeamMember `json:"members" db:"members"`
	Domain     string       `json:"domain" db:"domain"`
	CreatedAt  time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time    `json:"updatedAt" db:"updated_at"`
}

// HasMember reports whether userID is the leader or one of the members.
func (t *Team) HasMember(userID string) bool {
	if t.LeaderID == userID {
		return true
	}
	for _, m := range t.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}
