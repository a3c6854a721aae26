// Package bootstrap is the composition root: it loads configuration,
// configures logging, opens the table-store pool, constructs the
// identity client and wires services, controllers and routes. Every
// dependency is built once here and injected; nothing is lazily
// memoized.
package bootstrap

import (
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/faceit/backend/internal/app/controllers"
	appRepos "github.com/faceit/backend/internal/app/repositories"
	appRoutes "github.com/faceit/backend/internal/app/routes"
	appServices "github.com/faceit/backend/internal/app/services"
	"github.com/faceit/backend/internal/config"
	"github.com/faceit/backend/internal/db"
	"github.com/faceit/backend/internal/identity"
	appMiddleware "github.com/faceit/backend/internal/middleware"
	pkgAuth "github.com/faceit/backend/internal/pkg/auth"
	"github.com/faceit/backend/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Identity        identity.API
	Repos           *appRepos.Repositories
	AuthService     appServices.IAuthService
	ClassService    appServices.IClassService
	AuthController  *appControllers.AuthController
	ClassController *appControllers.ClassController
	AuthMiddleware  *appMiddleware.AuthMiddleware
	TokenVerifier   *pkgAuth.TokenVerifier
	Logger          zerolog.Logger
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

// SetupDatabase establishes the connection pool to the hosted Postgres.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Str("host", cfg.Database.Host).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Database connection successfully established.")
	return database.Pool, nil
}

// BuildDependencies initializes the identity client, repositories,
// services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Identity = identity.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)
	deps.Repos = appRepos.NewRepositories(dbPool)
	deps.TokenVerifier = pkgAuth.NewTokenVerifier(cfg.Supabase.JWTSecret)

	deps.AuthService = appServices.NewAuthService(
		deps.Identity,
		deps.Repos.ProfileRepository,
		deps.Repos.InstructorRepository,
		lgr,
	)
	deps.ClassService = appServices.NewClassService(deps.Repos.ClassRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.TokenVerifier)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.ClassController = appControllers.NewClassController(deps.ClassService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ClassController,
		deps.AuthMiddleware,
	)

	return router
}
