package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-pcbuilder-backend/config"
	_ "go-pcbuilder-backend/docs" // Important for Swagger
	v1 "go-pcbuilder-backend/internal/delivery/http/v1"
	"go-pcbuilder-backend/internal/usecase"
	"go-pcbuilder-backend/pkg/email"
	"go-pcbuilder-backend/pkg/inference"
	"go-pcbuilder-backend/pkg/logger"
)

// @title           PC Builder Backend API
// @version         1.0
// @description     Notification and inference gateway for the PC build recommendation frontend.
// @host            localhost:8080
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting pc-builder backend", "port", cfg.Port)

	// 3. Setup Email Dispatcher
	mailer := email.NewSESMailer(cfg)
	if !mailer.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - quote and recommendation emails will be unavailable")
	}

	// 4. Setup Inference Proxy
	forwarder := inference.NewClient(cfg)

	// 5. Setup UseCases
	quoteUC := usecase.NewQuoteUsecase(mailer, cfg)
	recommendationUC := usecase.NewRecommendationUsecase(mailer, cfg)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		QuoteUC:          quoteUC,
		RecommendationUC: recommendationUC,
		Forwarder:        forwarder,
		Config:           cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
