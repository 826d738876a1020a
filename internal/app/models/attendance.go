package models

import (
	"time"
)

// Attendance records presence of a participant for the two half-day blocks
type Attendance struct {
	ID              string    `json:"id" db:"id"`
	ParticipantName string    `json:"participantName" db:"participant_name"`
	StudentID       string    `json:"studentId" db:"student_id"`
	TeamName        string    `json:"teamName" db:"team_name"`
	Email           string    `json:"email" db:"email"`
	FirstHalf       bool      `json:"firstHalf" db:"first_half"`
	SecondHalf      bool      `json:"secondHalf" db:"second_half"`
	Remarks         string    `json:"remarks" db:"remarks"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}
