package models

import (
	"time"
)

// Certificate links a participant to an issued certificate document
type Certificate struct {
	ID              string    `json:"id" db:"id"`
	StudentName     string    `json:"studentName" db:"student_name"`
	StudentID       string    `json:"studentId" db:"student_id"`
	CertificateURL  string    `json:"certificateUrl" db:"certificate_url"`
	CertificateType string    `json:"certificateType" db:"certificate_type"`
	IssuedBy        string    `json:"issuedBy" db:"issued_by"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}
