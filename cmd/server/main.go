package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"inventaris/config"
	"inventaris/internal/i18n"
	"inventaris/internal/server"
	"inventaris/pkg/cache"
	"inventaris/pkg/logger"
	"inventaris/pkg/postgres"

	catH "inventaris/internal/category/handler"
	catRepoPkg "inventaris/internal/category/repository"
	catUCPkg "inventaris/internal/category/usecase"

	dashH "inventaris/internal/dashboard/handler"
	dashRepoPkg "inventaris/internal/dashboard/repository"
	dashUCPkg "inventaris/internal/dashboard/usecase"

	itemH "inventaris/internal/item/handler"
	itemRepoPkg "inventaris/internal/item/repository"
	itemUCPkg "inventaris/internal/item/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 1.5 Initialize i18n (embedded locales)
	if err := i18n.Init(); err != nil {
		log.Fatalf("failed to load locales: %v", err)
	}

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		// List caching is an optimization; the service runs without it.
		appLogger.Warn("Could not connect to Redis, caching disabled", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	// 5. Initialize Repositories
	catRepo := catRepoPkg.NewPGRepository(db)
	itemRepo := itemRepoPkg.NewPGRepository(db)
	dashRepo := dashRepoPkg.NewPGRepository(db)

	// 6. Initialize UseCases
	catUC := catUCPkg.NewCategoryUseCase(catRepo, redisClient, appLogger)
	itemUC := itemUCPkg.NewItemUseCase(itemRepo, catRepo, redisClient, appLogger)
	dashUC := dashUCPkg.NewDashboardUseCase(dashRepo, redisClient, appLogger)

	// 7. Initialize Handlers and Router
	handlers := &server.Handlers{
		Item:      itemH.NewItemHandler(itemUC, appLogger),
		Category:  catH.NewCategoryHandler(catUC, appLogger),
		Dashboard: dashH.NewDashboardHandler(dashUC, appLogger),
	}
	router := server.NewRouter(handlers)

	// 8. Start HTTP Server
	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:    port,
		Handler: router,
	}

	appLogger.Info("Starting HTTP server", zap.String("port", port))

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
