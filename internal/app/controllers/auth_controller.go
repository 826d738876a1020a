package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forgecrew/workshophub/internal/app/models/dto"
	"github.com/forgecrew/workshophub/internal/app/services"
	"github.com/forgecrew/workshophub/internal/middleware"
	"github.com/forgecrew/workshophub/internal/pkg/auth"
)

// AuthController handles login and the password lifecycle
type AuthController struct {
	authService  *services.AuthService
	userService  *services.UserService
	secureCookie bool
}

// NewAuthController creates a new AuthController. secureCookie marks the
// session cookie Secure; it should be true whenever the server runs behind
// TLS (release mode).
func NewAuthController(authService *services.AuthService, userService *services.UserService, secureCookie bool) *AuthController {
	return &AuthController{
		authService:  authService,
		userService:  userService,
		secureCookie: secureCookie,
	}
}

// Login handles user authentication
// @Summary Authenticate a user
// @Description Verifies credentials and returns a signed JWT. The token is also set as an httpOnly session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response, err := c.authService.Login(ctx, req.UserID, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.setSessionCookie(ctx, response.Token)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// Logout clears the session cookie
// @Summary Log out
// @Description Expires the session cookie. Bearer clients simply discard their token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Logged out"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(auth.TokenCookieName, "", -1, "/", "", c.secureCookie, true)
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Logged out"))
}

// Me returns the authenticated caller's profile
// @Summary Get current user
// @Description Returns the account record behind the presented token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Current user"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	userID, _, _ := middleware.CallerIdentity(ctx)

	user, err := c.userService.GetUserByUserID(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.UserResponse{
		ID:                 user.ID,
		UserID:             user.UserID,
		Name:               user.Name,
		Email:              user.Email,
		Role:               string(user.Role),
		NeedsPasswordSetup: user.NeedsPasswordSetup,
	}))
}

// ChangePassword replaces the caller's password after verifying the old one
// @Summary Change password
// @Description Verifies the current password before storing the new one
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Password changed"
// @Failure 400 {object} dto.ErrorResponse "Password too short"
// @Failure 401 {object} dto.ErrorResponse "Old password incorrect"
// @Router /auth/change-password [post]
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	userID, _, _ := middleware.CallerIdentity(ctx)
	if err := c.authService.ChangePassword(ctx, userID, req.OldPassword, req.NewPassword); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Password changed successfully"))
}

// SetupPassword is the first-login password flow for seeded accounts
// @Summary Set initial password
// @Description Stores a password for a seeded account that still has the setup flag; no old password required
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SetupPasswordRequest true "New password"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Password set"
// @Failure 400 {object} dto.ErrorResponse "Setup already completed or password too short"
// @Router /auth/setup-password [post]
func (c *AuthController) SetupPassword(ctx *gin.Context) {
	var req dto.SetupPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	userID, _, _ := middleware.CallerIdentity(ctx)
	if err := c.authService.SetupPassword(ctx, userID, req.NewPassword); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Password set successfully"))
}

func (c *AuthController) setSessionCookie(ctx *gin.Context, token string) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(auth.TokenCookieName, token, int(auth.TokenLifetime.Seconds()), "/", "", c.secureCookie, true)
}
