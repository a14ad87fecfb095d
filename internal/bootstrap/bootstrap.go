package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/acadbase/acadbase/docs" // generated swagger docs
	"github.com/acadbase/acadbase/internal/app/controllers"
	"github.com/acadbase/acadbase/internal/app/migrations"
	"github.com/acadbase/acadbase/internal/app/repositories"
	"github.com/acadbase/acadbase/internal/app/services"
	"github.com/acadbase/acadbase/internal/config"
	"github.com/acadbase/acadbase/internal/db"
	"github.com/acadbase/acadbase/internal/middleware"
	"github.com/acadbase/acadbase/internal/pkg/auth"
	"github.com/acadbase/acadbase/internal/pkg/filestorage"
	"github.com/acadbase/acadbase/internal/pkg/helpers"
	"github.com/acadbase/acadbase/internal/pkg/logger"
	"github.com/acadbase/acadbase/internal/pkg/report"
	"github.com/acadbase/acadbase/internal/pkg/schema"
	"github.com/acadbase/acadbase/internal/routes"
	"github.com/acadbase/acadbase/internal/seed"
)

// Dependencies holds the wired application graph.
type Dependencies struct {
	Repos          *repositories.Repositories
	Services       *services.Services
	Controllers    *controllers.Controllers
	AuthMiddleware *middleware.AuthMiddleware
	JWTService     *auth.JWTService
	FileStorage    *filestorage.LocalStorage
	Prober         *schema.Prober
}

// LoadConfigAndSetupLogger loads configuration and configures the logger.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	logger.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, nil
}

// SetupDatabase connects the pool, applies migrations, validates the
// required schema and seeds default data. A schema that still misses
// required pieces after migration fails the boot.
func SetupDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	logger.Info().Msg("Establishing database connection")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	pool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		pool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := migrations.NewMigrator(pool)
	if err := migrator.ApplyDirectory(ctx, migrationsDir); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	prober := schema.NewProber(pool)
	if err := prober.ValidateRequired(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	logger.Info().Msg("Required schema validated")

	if err := seed.CreateDefaultData(ctx, pool); err != nil {
		// Seeding failure is not fatal; an operator can create the account
		logger.Error().Err(err).Msg("Failed to create default data")
	}

	return pool, nil
}

// BuildDependencies wires repositories, services, controllers and
// middleware over the injected pool.
func BuildDependencies(cfg *config.Config, pool *pgxpool.Pool) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Prober = schema.NewProber(pool)
	deps.Repos = repositories.NewRepositories(pool, deps.Prober)

	baseURL := "http://localhost:" + cfg.Server.Port + "/uploads"
	storage, err := filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}
	deps.FileStorage = storage

	deps.JWTService = auth.NewJWTService(auth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	composer := report.NewComposer(cfg.Report.InstituteName, cfg.Report.FooterText)

	deps.Services = services.NewServices(deps.Repos, deps.JWTService, storage, composer, cfg)
	deps.Controllers = controllers.NewControllers(deps.Services)
	deps.AuthMiddleware = middleware.NewAuthMiddleware(deps.JWTService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware, swagger and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	routes.SetupRoutes(router, deps.Controllers, deps.AuthMiddleware)

	return router
}
