package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/forgecrew/workshophub/internal/app/controllers"
	"github.com/forgecrew/workshophub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	teamController *controllers.TeamController,
	projectController *controllers.ProjectController,
	attendanceController *controllers.AttendanceController,
	galleryController *controllers.GalleryController,
	reportController *controllers.ReportController,
	certificateController *controllers.CertificateController,
	settingsController *controllers.SettingsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	// The public gallery needs no token; visibility is decided by settings
	v1.GET("/gallery/public", galleryController.GetPublicGallery)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.Me)
		authenticated.POST("/auth/change-password", authController.ChangePassword)
		authenticated.POST("/auth/setup-password", authController.SetupPassword)

		teams := authenticated.Group("/teams")
		{
			teams.GET("", teamController.GetAllTeams)
			teams.GET("/:id", teamController.GetTeamByID)
			teams.POST("", teamController.CreateTeam)
			// Leader-or-admin enforcement happens in the service
			teams.PUT("/:id", teamController.UpdateTeam)
			teams.DELETE("/:id", teamController.DeleteTeam)
		}

		projects := authenticated.Group("/projects")
		{
			projects.GET("/mine", projectController.GetMyProject)
			projects.POST("", projectController.SubmitProject)
			// Owner-or-admin enforcement happens in the service
			projects.DELETE("/:id", projectController.DeleteProject)
		}

		authenticated.GET("/gallery", galleryController.GetGallery)
		authenticated.GET("/certificates/mine", certificateController.GetMyCertificates)
		authenticated.GET("/settings", settingsController.GetSettings)

		// --- Admin-only routes ---
		admin := authenticated.Group("")
		admin.Use(authMiddleware.AdminRequired())
		{
			users := admin.Group("/users")
			{
				users.GET("", userController.GetAllUsers)
				users.GET("/:id", userController.GetUserByID)
				users.POST("", userController.CreateUser)
				users.POST("/:id/reset-password", userController.ResetPassword)
				users.DELETE("/:id", userController.DeleteUser)
			}

			admin.GET("/projects", projectController.GetAllProjects)
			admin.PUT("/projects/:id/review", projectController.ReviewProject)

			attendance := admin.Group("/attendance")
			{
				attendance.GET("", attendanceController.GetAllAttendance)
				attendance.POST("", attendanceController.CreateAttendance)
				attendance.PUT("/:id", attendanceController.UpdateAttendance)
				attendance.DELETE("/:id", attendanceController.DeleteAttendance)
			}

			gallery := admin.Group("/gallery")
			{
				gallery.POST("", galleryController.CreateGalleryItem)
				gallery.PUT("/:id", galleryController.UpdateGalleryItem)
				gallery.PUT("/:id/visibility", galleryController.ToggleVisibility)
				gallery.DELETE("/:id", galleryController.DeleteGalleryItem)
			}

			reports := admin.Group("/reports")
			{
				reports.GET("", reportController.GetAllReports)
				reports.POST("", reportController.CreateReport)
				reports.DELETE("/:id", reportController.DeleteReport)
			}

			certificates := admin.Group("/certificates")
			{
				certificates.GET("", certificateController.GetAllCertificates)
				certificates.POST("", certificateController.CreateCertificate)
				certificates.DELETE("/:id", certificateController.DeleteCertificate)
			}

			admin.PUT("/settings", settingsController.UpdateSettings)
		}
	}
}
