package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"eventscout/config"
	"eventscout/internal/adapters/auth"
	"eventscout/internal/adapters/email"
	"eventscout/internal/adapters/ticketmaster"
	"eventscout/internal/cache"
	deliveryhttp "eventscout/internal/delivery/http"
	"eventscout/internal/delivery/http/controllers"
	"eventscout/internal/delivery/http/middleware"
	"eventscout/internal/domain"
	"eventscout/internal/repository/postgres"
	"eventscout/internal/services"
	"eventscout/internal/workers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Catalog client, with a read-through Redis cache when REDIS_URL is set.
	var catalog domain.CatalogClient = ticketmaster.NewClient(
		&http.Client{Timeout: 10 * time.Second},
		cfg.TicketmasterBaseURL,
		cfg.TicketmasterAPIKey,
	)
	if cfg.RedisURL != "" {
		redisClient, err := cache.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		catalog = cache.NewCatalogCache(catalog, redisClient, cfg.CatalogCacheTTL, logger)
	}

	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	issuer, verifier := auth.NewJWTTokens(cfg.JWTSecret)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		},
	})
	if err != nil {
		log.Fatalf("Failed to create mailer: %v", err)
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	favoriteRepo := postgres.NewFavoriteRepository(db)
	attendanceRepo := postgres.NewAttendanceRepository(db)
	reminderRepo := postgres.NewReminderRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)
	settingsRepo := postgres.NewNotificationSettingsRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, hasher, issuer, cfg.JWTExpiry)
	userService := services.NewUserService(userRepo, favoriteRepo, attendanceRepo)
	catalogService := services.NewCatalogService(catalog)
	reviewService := services.NewReviewService(reviewRepo)
	interactionService := services.NewInteractionService(
		favoriteRepo, attendanceRepo, reminderRepo, notificationRepo, catalog, logger)
	notificationService := services.NewNotificationService(notificationRepo, settingsRepo)
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	// Controllers
	authController := controllers.NewAuthController(logger, authService)
	eventController := controllers.NewEventController(logger, catalogService, reviewService, interactionService, userRepo)
	interactionController := controllers.NewInteractionController(logger, interactionService)
	userController := controllers.NewUserController(logger, userService, userRepo)
	notificationController := controllers.NewNotificationController(logger, notificationService)

	mux := deliveryhttp.NewRouter(
		authController,
		eventController,
		interactionController,
		userController,
		notificationController,
		verifier,
	)
	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	dispatcher := workers.NewReminderDispatcher(
		reminderRepo, notificationRepo, settingsRepo, userRepo, emailService, logger)
	if err := dispatcher.Start(cfg.ReminderSchedule); err != nil {
		log.Fatalf("Failed to start reminder dispatcher: %v", err)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	dispatcher.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	logger.Info("server stopped")
}
