package main

import (
	"cipherlab-backend/config"
	"cipherlab-backend/server"
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	envFile := flag.String("env", ".env", "dotenv file loaded before reading the environment")
	flag.Parse()

	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	log, err := cfg.Logger()
	if err != nil {
		logrus.Fatalf("Failed to configure logging: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.NewRouter(ctx, cfg, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.WithFields(logrus.Fields{
		"port":       cfg.Port,
		"origins":    cfg.AllowOrigins,
		"rate_limit": cfg.RateLimit,
	}).Info("Server starting")
	log.Info("API endpoints:")
	log.Info("  POST /api/affine/{encrypt,decrypt,crack}")
	log.Info("  POST /api/mono/{encrypt,decrypt}")
	log.Info("  POST /api/vigenere/{encrypt,decrypt}")
	log.Info("  POST /api/playfair/{encrypt,decrypt}")
	log.Info("  POST /api/hill/{encrypt,decrypt}")
	log.Info("  POST /api/euclid")
	log.Info("  GET  /api/health")

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("Graceful shutdown failed")
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to start server: %v", err)
	}
	log.Info("Server stopped")
}
