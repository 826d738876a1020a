package models

import (
	"time"
)

// Project defines a workshop project entry. One project per user: submissions
// are upserts keyed by UserID. Rating, score and feedback are only mutated
// through the admin review flow.
type Project struct {
	ID            string        `json:"id" db:"id"`
	UserID        string        `json:"userId" db:"user_id"`
	UserName      string        `json:"userName" db:"user_name"`
	TeamName      string        `json:"teamName,omitempty" db:"team_name"`
	Domain        string        `json:"domain" db:"domain"`
	Title         string        `json:"title" db:"title"`
	Description   string        `json:"description" db:"description"`
	GithubURL     string        `json:"githubUrl" db:"github_url"`
	LiveURL       string        `json:"liveUrl,omitempty" db:"live_url"`
	TechStack     []string      `json:"techStack" db:"tech_stack"`
	Status        ProjectStatus `json:"status" db:"status"`
	SubmittedAt   *time.Time    `json:"submittedAt,omitempty" db:"submitted_at"` // set once, never cleared
	Rating        int           `json:"rating" db:"rating"`
	Score         int           `json:"score" db:"score"`
	AdminFeedback string        `json:"adminFeedback" db:"admin_feedback"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time     `json:"updatedAt" db:"updated_at"`
}
