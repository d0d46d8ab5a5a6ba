package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/FarmEase/farmease_backend/internal/adapters/email"
	"github.com/FarmEase/farmease_backend/internal/adapters/weatherapi"
	portssvc "github.com/FarmEase/farmease_backend/internal/core/ports/services"
	"github.com/FarmEase/farmease_backend/internal/core/services"
	"github.com/FarmEase/farmease_backend/internal/dto"
	"github.com/FarmEase/farmease_backend/internal/handlers"
	"github.com/FarmEase/farmease_backend/internal/middleware"
	"github.com/FarmEase/farmease_backend/internal/repositories/database/pgsql"
	"github.com/FarmEase/farmease_backend/pkg/cache"
	"github.com/FarmEase/farmease_backend/pkg/config"
	"github.com/FarmEase/farmease_backend/pkg/database"
)

// @title FarmEase Backend API
// @version 1.0
// @description Agricultural marketplace backend: farm work lifecycle, crops, market prices, weather and community.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Redis backs the OTP store and the forecast cache
	redisClient := cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer redisClient.Close()
	if err := redisClient.Ping(context.Background()); err != nil {
		logger.Error("Failed to connect to Redis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Redis connection established.")

	var emailSender portssvc.EmailSender
	if cfg.EmailEnabled {
		sesSender, err := email.NewSESSender(context.Background(), cfg.SESRegion, cfg.EmailFrom)
		if err != nil {
			logger.Error("Failed to initialize SES sender", slog.String("error", err.Error()))
			os.Exit(1)
		}
		emailSender = sesSender
	} else {
		emailSender = email.NewLogSender(logger)
	}

	weatherClient := weatherapi.NewClient(cfg.WeatherAPIBase, cfg.WeatherAPIKey)

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(repos, services.ContainerDeps{
		OTPStore:        redisClient,
		EmailSender:     emailSender,
		Forecasts:       weatherClient,
		ForecastCache:   redisClient,
		WeatherCacheTTL: cfg.WeatherCacheTTL,
		SignupOTPTTL:    cfg.SignupOTPTTL,
	})

	if err := dto.RegisterValidations(); err != nil {
		logger.Error("Failed to register request validations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.MetricsMiddleware(),
		cors.Default(),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies the SQL migrations in ./migrations through a temporary
// database/sql connection using the pgx stdlib driver.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
