package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"withus/cmd"
	httpadapter "withus/internal/adapters/in/http"
	"withus/internal/adapters/out/postgres/itemrepo"
	"withus/internal/adapters/out/postgres/orderrepo"
	"withus/internal/adapters/out/postgres/reviewrepo"
	"withus/internal/adapters/out/postgres/userrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	gormDB := openDatabase(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// A missing .env file is fine in containerized deployments where the
	// environment is set directly.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:   envOr("HTTP_PORT", "8080"),
		DBHost:     envOr("DB_HOST", "localhost"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBUser:     envOr("DB_USER", "postgres"),
		DBPassword: envOr("DB_PASSWORD", "postgres"),
		DBName:     envOr("DB_NAME", "withus"),
		DBSslMode:  envOr("DB_SSLMODE", "disable"),

		TokenSecret:       os.Getenv("TOKEN_SECRET"),
		SessionTokenTTL:   envDuration("SESSION_TOKEN_TTL", 24*time.Hour),
		ResetTokenTTL:     envDuration("RESET_TOKEN_TTL", time.Hour),
		BcryptCost:        envInt("BCRYPT_COST", 0),
		FrontendBaseURL:   envOr("FRONTEND_BASE_URL", "http://localhost:3000"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		LowStockThreshold: envInt("LOW_STOCK_THRESHOLD", 5),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     envInt("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     os.Getenv("SMTP_FROM"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return d
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&userrepo.UserDTO{},
		&itemrepo.ItemDTO{},
		&orderrepo.OrderDTO{},
		&reviewrepo.ReviewDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(
		app.CreateRegisterUserCommandHandler(),
		app.CreateRequestPasswordResetCommandHandler(),
		app.CreateResetPasswordCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateCreateReviewCommandHandler(),
		app.CreateAuthenticateUserQueryHandler(),
		app.CreateGetItemsQueryHandler(),
		app.CreateGetItemQueryHandler(),
		app.CreateGetItemCategoriesQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetUserOrdersQueryHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetItemReviewsQueryHandler(),
		app.CreateGetUserReviewsQueryHandler(),
		app.CreateGetAllReviewsQueryHandler(),
		app.TokenService(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
