package main

import (
	"context"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"launchdash/internal"
	"launchdash/internal/config"
	"launchdash/internal/container"
	"launchdash/ui"

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

	logger, err := internal.NewLogger(internal.ParseLogLevel(appConfig.Log.Level), appConfig.Log.Mode)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	appContainer, err := container.New(appConfig, logger)
	if err != nil {
		log.Fatalf("Failed to create container: %v", err)
	}

	// The dashboard cannot serve anything without its table
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := appContainer.Init(ctx); err != nil {
		logger.Error("Failed to load launch records: %v", err)
		logger.Sync()
		os.Exit(1)
	}
	defer appContainer.Shutdown(context.Background())

	app, err := ui.NewApp(ui.Config{
		Port:           appConfig.Server.Port,
		GinMode:        appConfig.Server.GinMode,
		AllowedOrigins: appConfig.Server.AllowedOrigins,
	}, appContainer.Table, appContainer.Registry, appContainer.Dispatcher, logger)
	if err != nil {
		log.Fatalf("Failed to create web app: %v", err)
	}

	// Start pprof server for performance profiling
	if appConfig.Profiling.Enabled {
		go func() {
			logger.Info("Profiling server starting on :%s", appConfig.Profiling.Port)
			if err := http.ListenAndServe(":"+appConfig.Profiling.Port, nil); err != nil {
				logger.Warn("pprof server failed: %v", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("%v", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout)
		defer cancel()
		if err := app.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown failed: %v", err)
		}
	}
}
