package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"rishta_backend/internal/auth"
	"rishta_backend/internal/cache"
	"rishta_backend/internal/config"
	"rishta_backend/internal/email"
	"rishta_backend/internal/events"
	"rishta_backend/internal/handlers"
	"rishta_backend/internal/logger"
	"rishta_backend/internal/middleware"
	"rishta_backend/internal/models"
	"rishta_backend/internal/repositories"
	"rishta_backend/internal/routes"
	"rishta_backend/internal/services"
	"rishta_backend/internal/validator"
	"rishta_backend/internal/workers"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := autoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(context.Background()); err != nil {
		logger.Fatal("Redis unavailable", "error", err)
	}
	logger.Info("Redis connected", "addr", cfg.Redis.Addr)

	ginRouter := SetupRouter(cfg, gormDB, redisCache)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB, redisCache *cache.RedisCache) *gin.Engine {
	bus := events.NewBus()

	serviceContainer := initializeServices(cfg, gormDB, redisCache, bus)

	wireEventHandlers(bus, serviceContainer)

	startWorkers(context.Background(), serviceContainer)

	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, redisCache *cache.RedisCache, bus *events.Bus) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost == "" || cfg.Email.SMTPHost == "smtp.test.com" {
		logger.Warn("SMTP is not configured. Using mock email provider.")
		emailProvider = &MockEmailProvider{}
	} else {
		sender, err := email.NewGomailSender(cfg)
		if err != nil {
			logger.Fatal("Failed to initialize email sender", "error", err)
		}
		emailProvider = sender
	}

	userRepo := repositories.NewUserRepository(gormDB)
	profileRepo := repositories.NewProfileRepository(gormDB)
	interactionRepo := repositories.NewInteractionRepository(gormDB)
	moderationRepo := repositories.NewModerationRepository(gormDB)
	referralRepo := repositories.NewReferralRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)
	subscriptionRepo := repositories.NewSubscriptionRepository(gormDB)
	matchSettingsRepo := repositories.NewMatchSettingsRepository(gormDB)

	notificationService := services.NewNotificationService(notificationRepo)
	subscriptionService := services.NewSubscriptionService(subscriptionRepo)
	referralService := services.NewReferralService(referralRepo, userRepo, subscriptionService, notificationService, emailProvider, bus, cfg)
	authService := services.NewAuthService(userRepo, profileRepo, referralService, emailProvider)
	userService := services.NewUserService(userRepo)
	profileService := services.NewProfileService(profileRepo, moderationRepo)
	discoveryService := services.NewDiscoveryService(profileRepo, interactionRepo, moderationRepo, matchSettingsRepo, subscriptionService)
	interactionService := services.NewInteractionService(interactionRepo, profileRepo, moderationRepo, userRepo, notificationService, emailProvider, redisCache, bus)
	moderationService := services.NewModerationService(moderationRepo, profileRepo, userRepo, interactionRepo, notificationService, bus)
	matchSettingsService := services.NewMatchSettingsService(matchSettingsRepo)

	return &services.ServiceContainer{
		AuthService:          authService,
		UserService:          userService,
		ProfileService:       profileService,
		DiscoveryService:     discoveryService,
		InteractionService:   interactionService,
		ModerationService:    moderationService,
		ReferralService:      referralService,
		NotificationService:  notificationService,
		SubscriptionService:  subscriptionService,
		MatchSettingsService: matchSettingsService,
	}
}

// wireEventHandlers connects cross-service reactions that should not be
// direct call dependencies.
func wireEventHandlers(bus *events.Bus, sc *services.ServiceContainer) {
	// A referral counts once the referee's profile passes moderation.
	bus.Subscribe(events.ProfileApproved, func(ctx context.Context, ev events.Event) {
		userID := ev.Payload["user_id"]
		if userID == "" {
			return
		}
		if err := sc.ReferralService.CompleteForUser(userID); err != nil {
			logger.CtxWithError(ctx, "failed to complete referral", err, "user_id", userID)
		}
	})
}

func startWorkers(ctx context.Context, sc *services.ServiceContainer) {
	workers.NewSubscriptionWorker(sc.SubscriptionService).Start(ctx)
	workers.NewReferralWorker(sc.ReferralService).Start(ctx)
	workers.NewNotificationWorker(sc.NotificationService).Start(ctx)
	logger.Info("Background workers started")
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, sc.AuthService),
		ProfileHandler:      handlers.NewProfileHandler(baseHandler, sc.ProfileService),
		DiscoveryHandler:    handlers.NewDiscoveryHandler(baseHandler, sc.DiscoveryService, sc.ProfileService),
		InteractionHandler:  handlers.NewInteractionHandler(baseHandler, sc.InteractionService),
		ModerationHandler:   handlers.NewModerationHandler(baseHandler, sc.ModerationService),
		ReferralHandler:     handlers.NewReferralHandler(baseHandler, sc.ReferralService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, sc.NotificationService),
		SubscriptionHandler: handlers.NewSubscriptionHandler(baseHandler, sc.SubscriptionService),
		AdminHandler:        handlers.NewAdminHandler(baseHandler, sc.ModerationService, sc.UserService, sc.MatchSettingsService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Profile{},
		&models.Interaction{},
		&models.Match{},
		&models.Block{},
		&models.Report{},
		&models.Referral{},
		&models.Notification{},
		&models.SubscriptionPlan{},
		&models.UserSubscription{},
		&models.MatchSettings{},
	)
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer tx.Rollback()

	var adminUser models.User
	result := tx.Where("email = ?", adminEmail).First(&adminUser)

	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		tx.Rollback()
		return nil
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found. Creating first admin...", "email", adminEmail)

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	code, err := randomReferralCode()
	if err != nil {
		return fmt.Errorf("failed to generate admin referral code: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		PasswordHash: hashedPassword,
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
		IsVerified:   true,
		ReferralCode: code,
	}

	if err := tx.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)

	return tx.Commit().Error
}

func randomReferralCode() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
