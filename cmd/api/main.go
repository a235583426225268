package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"portfolio-api/internal/config"
	"portfolio-api/internal/db"
	"portfolio-api/internal/email"
	apihttp "portfolio-api/internal/http"
	"portfolio-api/internal/repository"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	client, err := db.Connect(ctx, cfg)
	if err != nil {
		logger.Fatal("mongo connect", zap.Error(err))
	}
	database := client.Database(cfg.MongoDBName)

	profileRepo := repository.NewMongoProfileRepository(database)
	projectRepo := repository.NewMongoProjectRepository(database)
	serviceRepo := repository.NewMongoServiceRepository(database)
	technologyRepo := repository.NewMongoTechnologyRepository(database)
	contactRepo := repository.NewMongoContactRepository(database)

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.EmailHost != "" {
		from := cfg.EmailFrom
		if from == "" {
			from = cfg.EmailUser
		}
		sender, err := email.NewSMTPSender(cfg.EmailHost, cfg.EmailPort, cfg.EmailUser, cfg.EmailPass, from, cfg.EmailFromName, cfg.EmailSecure)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	profileHandler := apihttp.NewProfileHandler(logger, profileRepo)
	projectHandler := apihttp.NewProjectHandler(logger, projectRepo)
	serviceHandler := apihttp.NewServiceHandler(logger, serviceRepo)
	technologyHandler := apihttp.NewTechnologyHandler(logger, technologyRepo)
	contactHandler := apihttp.NewContactHandler(logger, contactRepo, emailSender, cfg.RecipientEmail)

	router := apihttp.NewRouter(logger, cfg.PublicBaseURL, profileHandler, projectHandler, serviceHandler, technologyHandler, contactHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("port", cfg.HTTPPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("forced shutdown", zap.Error(err))
	}
	if err := db.Disconnect(client); err != nil {
		logger.Warn("mongo disconnect", zap.Error(err))
	}
}
