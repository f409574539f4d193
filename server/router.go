// Package server wires the gin engine
package server

import (
	"cipherlab-backend/config"
	"cipherlab-backend/handlers"
	"cipherlab-backend/middleware"
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter builds the engine serving the cipher API under /api. ctx bounds the
// rate limiter's background sweeper.
func NewRouter(ctx context.Context, cfg config.Config, log *logrus.Logger) *gin.Engine {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	router.Use(middleware.RateLimit(ctx, cfg.RateLimit, time.Minute))

	cipherHandler := handlers.NewCipherHandler(log)
	cipherHandler.Register(router.Group("/api"))
	router.NoRoute(cipherHandler.NotFound)

	return router
}
