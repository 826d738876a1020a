package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/forgecrew/workshophub/internal/app/controllers"
	appMigrations "github.com/forgecrew/workshophub/internal/app/migrations"
	appRepos "github.com/forgecrew/workshophub/internal/app/repositories"
	"github.com/forgecrew/workshophub/internal/app/repositories/memory"
	"github.com/forgecrew/workshophub/internal/app/repositories/postgres"
	appRoutes "github.com/forgecrew/workshophub/internal/app/routes"
	appServices "github.com/forgecrew/workshophub/internal/app/services"
	"github.com/forgecrew/workshophub/internal/config"
	"github.com/forgecrew/workshophub/internal/db"
	appMiddleware "github.com/forgecrew/workshophub/internal/middleware"
	pkgAuth "github.com/forgecrew/workshophub/internal/pkg/auth"
	"github.com/forgecrew/workshophub/internal/pkg/logger"
	"github.com/forgecrew/workshophub/internal/seed"
)

// Persistence is the storage backend selected once at startup. Either the
// Postgres pool is set (database mode) or it is nil (fallback mode); the
// choice is never revisited while the process runs.
type Persistence struct {
	Repos    *appRepos.Repositories
	Database *db.PostgresDB
	Fallback bool
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService           *appServices.AuthService
	UserService           *appServices.UserService
	TeamService           *appServices.TeamService
	ProjectService        *appServices.ProjectService
	AuthController        *appControllers.AuthController
	UserController        *appControllers.UserController
	TeamController        *appControllers.TeamController
	ProjectController     *appControllers.ProjectController
	AttendanceController  *appControllers.AttendanceController
	GalleryController     *appControllers.GalleryController
	ReportController      *appControllers.ReportController
	CertificateController *appControllers.CertificateController
	SettingsController    *appControllers.SettingsController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
	Logger                zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupPersistence picks the storage backend exactly once. With a database
// URL configured it connects, migrates and uses Postgres; without one, or
// when the connection attempt fails, it falls back to the JSON-file store.
func SetupPersistence(cfg *config.Config, lgr zerolog.Logger) (*Persistence, error) {
	if cfg.DatabaseConfigured() {
		database, err := db.NewPostgresDB(cfg)
		if err == nil {
			if err := RunMigrations(database, lgr); err != nil {
				database.Close()
				return nil, err
			}
			lgr.Info().Msg("Database backend selected")
			return &Persistence{
				Repos:    postgres.NewRepositories(database.Pool),
				Database: database,
			}, nil
		}
		lgr.Warn().Err(err).Msg("Database unreachable, falling back to the in-memory store")
	} else {
		lgr.Info().Msg("No database configured, using the in-memory store")
	}

	store := memory.NewStore(cfg.Fallback.FilePath, lgr)
	return &Persistence{
		Repos:    memory.NewRepositories(store),
		Fallback: true,
	}, nil
}

// RunMigrations brings the connected database up to the current schema. It
// is shared by the server bootstrap and the seed CLI so neither can run
// against an unmigrated database.
func RunMigrations(database *db.PostgresDB, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		return fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		return fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// BuildDependencies initializes services, controllers and middleware over
// the selected backend, then seeds the default accounts.
func BuildDependencies(cfg *config.Config, persistence *Persistence, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, Repos: persistence.Repos}

	secret := cfg.JWT.Secret
	if secret == "" {
		secret = config.InsecureDefaultJWTSecret
		lgr.Warn().Msg("JWT_SECRET is not set; using the insecure built-in default. Do not run production like this.")
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   secret,
		TokenIssuer: cfg.JWT.Issuer,
	})

	// Services
	deps.AuthService = appServices.NewAuthService(deps.Repos.Users, deps.JWTService, lgr)
	deps.UserService = appServices.NewUserService(deps.Repos.Users, lgr)
	deps.TeamService = appServices.NewTeamService(deps.Repos.Teams, lgr)
	deps.ProjectService = appServices.NewProjectService(deps.Repos.Projects, deps.Repos.Settings, lgr)

	// Controllers
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.UserService, cfg.IsProduction())
	deps.UserController = appControllers.NewUserController(deps.UserService, deps.AuthService)
	deps.TeamController = appControllers.NewTeamController(deps.TeamService)
	deps.ProjectController = appControllers.NewProjectController(deps.ProjectService)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.Repos.Attendance)
	deps.GalleryController = appControllers.NewGalleryController(deps.Repos.Gallery, deps.Repos.Settings)
	deps.ReportController = appControllers.NewReportController(deps.Repos.Reports)
	deps.CertificateController = appControllers.NewCertificateController(deps.Repos.Certificates)
	deps.SettingsController = appControllers.NewSettingsController(deps.Repos.Settings)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	if err := seed.EnsureDefaults(context.Background(), deps.Repos, lgr); err != nil {
		// Seeding problems should not keep the server from starting
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return deps, nil
}

// SetupRouter configures the gin engine and registers all routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(lgr))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.UserController,
		deps.TeamController,
		deps.ProjectController,
		deps.AttendanceController,
		deps.GalleryController,
		deps.ReportController,
		deps.CertificateController,
		deps.SettingsController,
		deps.AuthMiddleware,
	)

	return router
}

// requestLogger logs one structured line per request
func requestLogger(lgr zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		event := lgr.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			event = lgr.Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Msg("Request handled")
	}
}
