package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nainaland/internal/config"
	"nainaland/internal/handler"
	"nainaland/internal/logging"
	"nainaland/internal/notifier"
	"nainaland/internal/repository"
	"nainaland/internal/seed"
	"nainaland/internal/service"
	"nainaland/internal/store"
	"nainaland/internal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadDotEnv()

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, closeLog, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to open log file %s: %v", cfg.LogFile, err)
	}
	defer closeLog()

	gin.SetMode(cfg.GinMode)

	// --- Storage ---
	repos := repository.NewRepositories(store.New())
	if err := seed.Load(context.Background(), repos, seed.Admin{
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
	}); err != nil {
		logger.Error("failed to seed store", "error", err)
		os.Exit(1)
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret, cfg.JWTExpirationHours)

	// --- Initialize Services ---
	services := handler.Services{
		Auth:         service.NewAuthService(repos.Users, jwtUtil),
		Properties:   service.NewPropertyService(repos.Properties),
		Blogs:        service.NewBlogService(repos.BlogPosts),
		Testimonials: service.NewTestimonialService(repos.Testimonials),
		Messages:     service.NewMessageService(repos.Messages, notifier.NewLog(logger)),
	}

	router := handler.NewRouter(services, handler.RouterConfig{
		JWTUtil:    jwtUtil,
		CORSOrigin: cfg.CORSOrigin,
		Logger:     logger,
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", "addr", srv.Addr, "gin_mode", cfg.GinMode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return
	}

	logger.Info("server exiting")
}
