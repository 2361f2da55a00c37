package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"matchmate_backend/internal/config"
	"matchmate_backend/internal/database"
	"matchmate_backend/internal/handlers"
	"matchmate_backend/internal/logger"
	"matchmate_backend/internal/middleware"
	"matchmate_backend/internal/payments"
	"matchmate_backend/internal/repositories"
	"matchmate_backend/internal/routes"
	"matchmate_backend/internal/services"
	"matchmate_backend/internal/validator"
)

// Run boots the process: config, logger, store client, wiring, HTTP server
// with signal-driven graceful shutdown.
func Run() {
	// .env is optional; container deployments set real env vars.
	_ = godotenv.Load()

	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("logger initialized", "env", cfg.Server.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, err := database.Connect(ctx, database.Config{
		URI:         cfg.Mongo.URI,
		Database:    cfg.Mongo.Database,
		MaxPoolSize: cfg.Mongo.MaxPoolSize,
		MinPoolSize: cfg.Mongo.MinPoolSize,
	})
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}

	if err := mongoClient.EnsureIndexes(ctx); err != nil {
		logger.Fatal("failed to ensure indexes", "error", err)
	}

	router := SetupRouter(cfg, mongoClient)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:    address,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", "address", address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}
	if err := mongoClient.Close(shutdownCtx); err != nil {
		logger.Error("database shutdown error", "error", err)
	}
	logger.Info("server stopped")
}

// SetupRouter wires repositories, services and handlers into a gin engine.
func SetupRouter(cfg *config.Config, mongoClient *database.Mongo) *gin.Engine {
	userRepo := repositories.NewUserRepository(mongoClient.Collection(database.CollectionUsers))
	biodataRepo := repositories.NewBiodataRepository(
		mongoClient.Collection(database.CollectionBiodata),
		mongoClient.Collection(database.CollectionCounters),
	)
	favoriteRepo := repositories.NewFavoriteRepository(mongoClient.Collection(database.CollectionFavorite))
	contactRepo := repositories.NewContactRequestRepository(mongoClient.Collection(database.CollectionContact))
	reviewRepo := repositories.NewReviewRepository(mongoClient.Collection(database.CollectionReview))

	serviceContainer := &services.ServiceContainer{
		AuthService:     services.NewAuthService(cfg.JWT.Secret, cfg.JWT.TTLHours),
		UserService:     services.NewUserService(userRepo),
		BiodataService:  services.NewBiodataService(biodataRepo, userRepo),
		FavoriteService: services.NewFavoriteService(favoriteRepo),
		ContactService:  services.NewContactService(contactRepo),
		ReviewService:   services.NewReviewService(reviewRepo),
		AdminService:    services.NewAdminService(userRepo, biodataRepo, contactRepo),
		PaymentService:  services.NewPaymentService(payments.NewStripeClient(cfg.Stripe.SecretKey)),
	}

	appHandlers := buildHandlers(cfg, serviceContainer)

	authRequired := middleware.Auth(cfg.JWT.Secret)
	adminRequired := middleware.RequireAdmin(userRepo)

	router := newEngine(cfg)
	routes.RegisterRoutes(router, appHandlers, authRequired, adminRequired)
	return router
}

func buildHandlers(cfg *config.Config, sc *services.ServiceContainer) *handlers.AppHandlers {
	base := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		AuthHandler:     handlers.NewAuthHandler(base, sc.AuthService, cfg.IsProduction()),
		UserHandler:     handlers.NewUserHandler(base, sc.UserService),
		BiodataHandler:  handlers.NewBiodataHandler(base, sc.BiodataService),
		FavoriteHandler: handlers.NewFavoriteHandler(base, sc.FavoriteService),
		ContactHandler:  handlers.NewContactHandler(base, sc.ContactService),
		ReviewHandler:   handlers.NewReviewHandler(base, sc.ReviewService),
		AdminHandler:    handlers.NewAdminHandler(base, sc.AdminService, sc.ContactService),
		PaymentHandler:  handlers.NewPaymentHandler(base, sc.PaymentService),
	}
}

func newEngine(cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())

	// The credential travels in a cookie, so CORS must allow credentials and
	// pin exact origins.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.Origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	return router
}
