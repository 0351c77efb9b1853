package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/services"
	"portfolio-backend/internal/storage"
	"portfolio-backend/internal/storage/memory"
	"portfolio-backend/internal/storage/mongodb"
	"portfolio-backend/pkg/logger"
)

func main() {
	memoryMode := flag.Bool("memory", false, "use in-memory storage instead of MongoDB")
	flag.Parse()

	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	logger.Init(cfg.Log.Level)
	gin.SetMode(cfg.Server.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		stores *storage.Stores
		db     *mongodb.DB
	)
	if *memoryMode || os.Getenv("STORAGE") == "memory" {
		logger.Warn().Msg("running with in-memory storage; data will not survive restart")
		stores = memory.New().Stores()
	} else {
		db, err = mongodb.Connect(ctx, &cfg.Mongo)
		if err != nil {
			logger.Fatalf("failed to connect to mongodb: %v", err)
		}
		if err := db.EnsureIndexes(ctx); err != nil {
			logger.Fatalf("failed to create indexes: %v", err)
		}
		stores = db.Stores()
	}

	tokens := auth.NewMemoryTokenStore()
	authService, err := services.NewAuthService(&cfg.Auth, tokens)
	if err != nil {
		logger.Fatalf("failed to initialize auth: %v", err)
	}

	router := handlers.NewRouter(cfg, stores, tokens, authService)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	go func() {
		logger.Infof("server listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server shutdown: %v", err)
	}
	if db != nil {
		if err := db.Close(shutdownCtx); err != nil {
			logger.Errorf("mongodb disconnect: %v", err)
		}
	}
}
