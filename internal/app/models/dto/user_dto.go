package dto

// CreateUserRequest is the admin payload for creating a participant account
type CreateUserRequest struct {
	UserID   string `json:"userId" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Role     string `json:"role" binding:"omitempty,oneof=participant admin"`
}

// UserResponse is the public projection of a user record
type UserResponse struct {
	ID                 string `json:"id"`
	UserID             string `json:"userId"`
	Name               string `json:"name"`
	Email              string `json:"email,omitempty"`
	Role               string `json:"role"`
	NeedsPasswordSetup bool   `json:"needsPasswordSetup"`
}
