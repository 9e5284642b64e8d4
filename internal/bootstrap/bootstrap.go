package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/jdelacruz/campusrecords/internal/app/controllers"
	appMigrations "github.com/jdelacruz/campusrecords/internal/app/migrations"
	appRepos "github.com/jdelacruz/campusrecords/internal/app/repositories"
	appRoutes "github.com/jdelacruz/campusrecords/internal/app/routes"
	appServices "github.com/jdelacruz/campusrecords/internal/app/services"
	"github.com/jdelacruz/campusrecords/internal/config"
	"github.com/jdelacruz/campusrecords/internal/db"
	appMiddleware "github.com/jdelacruz/campusrecords/internal/middleware"
	pkgAuth "github.com/jdelacruz/campusrecords/internal/pkg/auth"
	"github.com/jdelacruz/campusrecords/internal/pkg/cache"
	"github.com/jdelacruz/campusrecords/internal/pkg/helpers"
	"github.com/jdelacruz/campusrecords/internal/pkg/logger"
	"github.com/jdelacruz/campusrecords/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	ProfileService       appServices.ProfileService
	EnrollmentService    appServices.EnrollmentService
	GradeService         appServices.GradeService
	ProfileController    *appControllers.ProfileController
	EnrollmentController *appControllers.EnrollmentController
	GradeController      *appControllers.GradeController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	RedisClient          *redis.Client
	Logger               zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	queryTimeout := helpers.ParseDuration(cfg.Store.QueryTimeout, 5*time.Second)
	repos := appRepos.NewRepositories(dbPool, queryTimeout)
	if err := seed.CreateDefaultData(context.Background(), dbPool, repos, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	queryTimeout := helpers.ParseDuration(cfg.Store.QueryTimeout, 5*time.Second)
	deps.Repos = appRepos.NewRepositories(dbPool, queryTimeout)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	// The cache is optional. Leave the interface nil when no address is
	// configured so the enrollment service skips it entirely.
	var viewCache appServices.EnrollmentCache
	if cfg.Redis.Addr != "" {
		deps.RedisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := deps.RedisClient.Ping(ctx).Err(); err != nil {
			lgr.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis unreachable, enrollment cache disabled")
			deps.RedisClient = nil
		} else {
			cacheTTL := helpers.ParseDuration(cfg.Redis.CacheTTL, 30*time.Second)
			viewCache = cache.NewEnrollmentViewCache(deps.RedisClient, cacheTTL)
			lgr.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cacheTTL).Msg("Enrollment cache enabled")
		}
	}

	deps.ProfileService = appServices.NewProfileService(deps.Repos.ProfileRepository)
	deps.EnrollmentService = appServices.NewEnrollmentService(
		deps.Repos.EnrollmentRepository,
		deps.Repos.CourseRepository,
		deps.Repos.ProfileRepository,
		viewCache,
		lgr,
	)
	deps.GradeService = appServices.NewGradeService(deps.EnrollmentService, deps.Repos.GradeRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.ProfileController = appControllers.NewProfileController(deps.ProfileService)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.EnrollmentService)
	deps.GradeController = appControllers.NewGradeController(deps.GradeService)

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

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.ProfileController,
		deps.EnrollmentController,
		deps.GradeController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
