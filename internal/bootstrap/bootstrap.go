package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/wmad/library-backend/internal/app/controllers"
	appMigrations "github.com/wmad/library-backend/internal/app/migrations"
	"github.com/wmad/library-backend/internal/app/models/dto"
	appRepos "github.com/wmad/library-backend/internal/app/repositories"
	appRoutes "github.com/wmad/library-backend/internal/app/routes"
	appServices "github.com/wmad/library-backend/internal/app/services"
	"github.com/wmad/library-backend/internal/config"
	"github.com/wmad/library-backend/internal/db"
	appMiddleware "github.com/wmad/library-backend/internal/middleware"
	pkgAuth "github.com/wmad/library-backend/internal/pkg/auth"
	"github.com/wmad/library-backend/internal/pkg/logger"
	"github.com/wmad/library-backend/internal/pkg/metrics"
	"github.com/wmad/library-backend/internal/seed"
)

// DefaultConfigPath is where the optional YAML config is looked up
var DefaultConfigPath = filepath.Join("configs", "config.yaml")

// Stores are the persistence backends the services run on
type Stores struct {
	Members    appServices.MemberRepository
	Accounts   appServices.UserAccountRepository
	Books      appServices.BookRepository
	Authors    appServices.AuthorRepository
	BookIssues appServices.BookIssueRepository
	// DB backs the health check; nil skips the database probe.
	DB appControllers.Pinger
}

// StoresFromRepositories wires the PostgreSQL repositories
func StoresFromRepositories(repos *appRepos.Repositories, database appControllers.Pinger) Stores {
	return Stores{
		Members:    repos.MemberRepository,
		Accounts:   repos.UserAccountRepository,
		Books:      repos.BookRepository,
		Authors:    repos.AuthorRepository,
		BookIssues: repos.BookIssueRepository,
		DB:         database,
	}
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	JWTService         *pkgAuth.JWTService
	AuthService        appServices.AuthService
	MemberService      appServices.MemberService
	UserAccountService appServices.UserAccountService
	BookService        appServices.BookService
	AuthorService      appServices.AuthorService
	BookIssueService   appServices.BookIssueService
	Controllers        appRoutes.Controllers
	HealthController   *appControllers.HealthController
	AuthRateLimiter    *appMiddleware.RateLimiter
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.ConfigureFromFormat(cfg.Logging.Level, cfg.Logging.Format)

	lgr := log.Logger
	lgr.Info().
		Str("env", cfg.Env).
		Str("logLevel", cfg.Logging.Level).
		Str("logFormat", cfg.Logging.Format).
		Msg("Logger configured")
	if cfg.JWT.SecretFallback {
		lgr.Warn().Msg("JWT_SECRET is not set, using the development fallback secret")
	}
	return cfg, lgr, nil
}

// RunMigrations applies the embedded migrations
func RunMigrations(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	applied, err := appMigrations.NewMigrator(database.Pool).Migrate(ctx, appMigrations.Files())
	if err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Int("applied", applied).Msg("Database migrations complete")
	return nil
}

// SetupDatabase connects, migrates when enabled and seeds the lookup tables.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := RunMigrations(ctx, database, lgr); err != nil {
			database.Close()
			return nil, err
		}
	}

	if err := seed.CreateDefaultData(ctx, database, lgr); err != nil {
		// Startup continues; the lookup rows may already exist.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes services and controllers on top of stores.
func BuildDependencies(cfg *config.Config, stores Stores, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    cfg.TokenExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(stores.Accounts, deps.JWTService)
	deps.MemberService = appServices.NewMemberService(stores.Members, nil)
	deps.UserAccountService = appServices.NewUserAccountService(stores.Accounts)
	deps.BookService = appServices.NewBookService(stores.Books)
	deps.AuthorService = appServices.NewAuthorService(stores.Authors)
	deps.BookIssueService = appServices.NewBookIssueService(stores.BookIssues, nil)

	deps.Controllers = appRoutes.Controllers{
		Auth:        appControllers.NewAuthController(deps.AuthService, lgr),
		Member:      appControllers.NewMemberController(deps.MemberService),
		UserAccount: appControllers.NewUserAccountController(deps.UserAccountService),
		Book:        appControllers.NewBookController(deps.BookService),
		Author:      appControllers.NewAuthorController(deps.AuthorService),
		BookIssue:   appControllers.NewBookIssueController(deps.BookIssueService),
	}
	deps.HealthController = appControllers.NewHealthController(stores.DB)
	deps.AuthRateLimiter = appMiddleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	return deps
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", appMiddleware.RequestIDHeader},
		ExposeHeaders:    []string{appMiddleware.RequestIDHeader},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}

	origins := cfg.CORS.AllowedOrigins
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}
	return cors.New(corsConfig)
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else if cfg.Env == config.EnvTest {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		appMiddleware.Recovery(),
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(),
		metrics.Instrument(),
		corsMiddleware(cfg),
	)

	if !cfg.IsProduction() {
		appRoutes.SetupSwagger(router)
	}

	router.GET("/health", deps.HealthController.Health)
	router.GET("/ping", deps.HealthController.Ping)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	appRoutes.SetupRouter(router,
		deps.Controllers,
		appMiddleware.AuthGate(deps.JWTService),
		deps.AuthRateLimiter.Handler(),
	)

	router.NoRoute(func(c *gin.Context) {
		appMiddleware.AbortWithError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Not found")
	})

	return router
}
