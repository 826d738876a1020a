package dto

// LoginRequest is the credentials payload for /auth/login
type LoginRequest struct {
	UserID   string `json:"userId" binding:"required" example:"WS2024-017"`
	Password string `json:"password" binding:"required" example:"pw12345678"`
}

// LoginResponse carries the issued token and the identity it encodes
type LoginResponse struct {
	Token              string `json:"token"`
	UserID             string `json:"userId"`
	Name               string `json:"name"`
	Role               string `json:"role"`
	NeedsPasswordSetup bool   `json:"needsPasswordSetup"`
}

// ChangePasswordRequest requires the old password to be re-verified
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// SetupPasswordRequest is the first-login flow for seeded accounts
type SetupPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// ResetPasswordRequest is the admin-triggered password overwrite
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}
