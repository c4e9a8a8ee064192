package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"goplots/internal"
	"goplots/internal/admin"
	"goplots/internal/api"
	"goplots/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewLogger(internal.ParseLogLevel(appConfig.LogLevel))
	server := api.NewServer(appConfig, logger)

	apiServer := &http.Server{
		Addr:    ":" + appConfig.Server.Port,
		Handler: server.Handler(),
	}

	var adminServer *http.Server
	if appConfig.Profiling.Enabled {
		adminServer = &http.Server{
			Addr:    ":" + appConfig.Profiling.Port,
			Handler: admin.NewRouter(),
		}
		go func() {
			logger.Info("Profiling server starting on :%s", appConfig.Profiling.Port)
			logger.Info("View profiles: go tool pprof -http=:8081 http://localhost:%s/debug/pprof/profile?seconds=30", appConfig.Profiling.Port)
			if err := adminServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Profiling server failed: %v", err)
			}
		}()
	}

	go func() {
		logger.Info("Starting goplots server on port %s (render concurrency %d, debug %t)",
			appConfig.Server.Port, appConfig.Render.Concurrency, appConfig.Server.Debug)
		if err := apiServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down (timeout %s)", appConfig.Server.ShutdownTimeout)
	ctx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout)
	defer cancel()

	if err := apiServer.Shutdown(ctx); err != nil {
		logger.Error("API server shutdown: %v", err)
	}
	if adminServer != nil {
		if err := adminServer.Shutdown(ctx); err != nil {
			logger.Error("Profiling server shutdown: %v", err)
		}
	}
}
