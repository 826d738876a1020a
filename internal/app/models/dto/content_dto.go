package dto

// CreateAttendanceRequest records presence for one participant
type CreateAttendanceRequest struct {
	ParticipantName string `json:"participantName" binding:"required"`
	StudentID       string `json:"studentId"`
	TeamName        string `json:"teamName"`
	Email           string `json:"email" binding:"omitempty,email"`
	FirstHalf       bool   `json:"firstHalf"`
	SecondHalf      bool   `json:"secondHalf"`
	Remarks         string `json:"remarks"`
}

// UpdateAttendanceRequest carries partial attendance updates
type UpdateAttendanceRequest struct {
	ParticipantName *string `json:"participantName,omitempty"`
	StudentID       *string `json:"studentId,omitempty"`
	TeamName        *string `json:"teamName,omitempty"`
	Email           *string `json:"email,omitempty"`
	FirstHalf       *bool   `json:"firstHalf,omitempty"`
	SecondHalf      *bool   `json:"secondHalf,omitempty"`
	Remarks         *string `json:"remarks,omitempty"`
}

// CreateGalleryItemRequest adds a media item to the gallery
type CreateGalleryItemRequest struct {
	Filename      string `json:"filename" binding:"required"`
	URL           string `json:"url" binding:"required"`
	Type          string `json:"type" binding:"omitempty,oneof=image video other"`
	Caption       string `json:"caption"`
	PublicVisible bool   `json:"publicVisible"`
}

// UpdateGalleryItemRequest carries partial gallery updates
type UpdateGalleryItemRequest struct {
	Filename      *string `json:"filename,omitempty"`
	URL           *string `json:"url,omitempty"`
	Type          *string `json:"type,omitempty" binding:"omitempty,oneof=image video other"`
	Caption       *string `json:"caption,omitempty"`
	PublicVisible *bool   `json:"publicVisible,omitempty"`
}

// CreateReportRequest adds an admin document
type CreateReportRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	FileURL     string `json:"fileUrl" binding:"required"`
	FileType    string `json:"fileType"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// CreateCertificateRequest records an issued certificate
type CreateCertificateRequest struct {
	StudentName     string `json:"studentName" binding:"required"`
	StudentID       string `json:"studentId" binding:"required"`
	CertificateURL  string `json:"certificateUrl" binding:"required"`
	CertificateType string `json:"certificateType"`
	IssuedBy        string `json:"issuedBy"`
}

// UpdateSettingsRequest carries partial settings updates
type UpdateSettingsRequest struct {
	SubmissionsEnabled *bool   `json:"submissionsEnabled,omitempty"`
	WorkshopEndTime    *string `json:"workshopEndTime,omitempty"`
	Announcement       *string `json:"announcement,omitempty"`
	GalleryPublic      *bool   `json:"galleryPublic,omitempty"`
}
