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

	"github.com/gin-gonic/gin"

	"parkpost/internal/api/controller"
	"parkpost/internal/api/repository"
	"parkpost/internal/api/service"
	"parkpost/internal/auth"
	"parkpost/internal/config"
	"parkpost/internal/db"
	"parkpost/internal/logger"
	"parkpost/internal/server"
	"parkpost/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Load configuration; a missing signing secret is startup-fatal.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(cfg.OTLPEndpoint)
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	logger.Init(cfg.GinMode != "release")

	// Initialize SQLite DB
	pool, err := db.Connect(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	if err := db.InitializeSchema(pool); err != nil {
		log.Fatalf("failed to initialize schema: %v", err)
	}

	codec := auth.NewTokenCodec(cfg.JWTSecret)

	// Create repositories
	userRepo := repository.NewUserRepository(pool)
	postRepo := repository.NewPostRepository(pool)
	historyRepo := repository.NewHistoryRepository(pool)

	// Create services
	userService := service.NewUserService(userRepo, codec)
	postService := service.NewPostService(postRepo)
	historyService := service.NewHistoryService(historyRepo)

	// Create controllers
	userController := controller.NewUserController(userService, historyService)
	pageController := controller.NewPageController(historyService)
	postController := controller.NewPostController(postService, historyService)

	// Create the Gin-based server
	srv := server.New(codec, userController, pageController, postController, "web/templates/*.html")

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.Engine(),
	}

	go func() {
		log.Printf("http server started on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
