package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	identityapp "github.com/stockpilot/backend/internal/application/identity"
	inventoryapp "github.com/stockpilot/backend/internal/application/inventory"
	partnerapp "github.com/stockpilot/backend/internal/application/partner"
	reportapp "github.com/stockpilot/backend/internal/application/report"
	"github.com/stockpilot/backend/internal/infrastructure/auth"
	"github.com/stockpilot/backend/internal/infrastructure/config"
	"github.com/stockpilot/backend/internal/infrastructure/logger"
	"github.com/stockpilot/backend/internal/infrastructure/mail"
	"github.com/stockpilot/backend/internal/infrastructure/persistence"
	"github.com/stockpilot/backend/internal/infrastructure/printing"
	"github.com/stockpilot/backend/internal/interfaces/http/handler"
	"github.com/stockpilot/backend/internal/interfaces/http/middleware"
	"github.com/stockpilot/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting StockPilot Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	itemRepo := persistence.NewGormInventoryRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Initialize JWT service and token blacklist
	jwtService := auth.NewJWTService(cfg.JWT)
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("Redis unavailable, falling back to in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
		log.Info("Redis token blacklist connected")
	}

	// Initialize report rendering and delivery
	renderer := printing.NewChromeRenderer(printing.Config{
		RenderTimeout: cfg.PDF.RenderTimeout,
		NoSandbox:     true,
		Logger:        log,
	})
	defer renderer.Close()
	mailer := mail.NewSMTPMailer(cfg.Mail, log)

	// Initialize application services
	customerService := partnerapp.NewCustomerService(customerRepo)
	itemService := inventoryapp.NewItemService(itemRepo)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	reportService := reportapp.NewReportService(itemRepo, customerRepo, log)
	mailService := reportapp.NewMailService(reportService, renderer, mailer, log)

	// Setup Gin
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	middleware.SetupValidator()
	engine.Use(logger.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORS(cfg.HTTP))

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Register routes
	authMW := middleware.JWTAuth(jwtService, blacklist)
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	systemHandler := handler.NewSystemHandler(db)
	r.Register(handler.NewAuthHandler(authService, authMW)).
		Register(handler.NewCustomerHandler(customerService, authMW)).
		Register(handler.NewInventoryHandler(itemService, authMW)).
		Register(handler.NewReportHandler(reportService, mailService, authMW)).
		Register(systemHandler)
	r.Setup()

	// Root-level health check for load balancers
	engine.GET("/health", systemHandler.Health)

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
