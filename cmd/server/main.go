package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/max9849/webflow-offres-api/internal/api"
	"github.com/max9849/webflow-offres-api/internal/config"
	"github.com/max9849/webflow-offres-api/internal/logger"
	"github.com/max9849/webflow-offres-api/internal/mapper"
	"github.com/max9849/webflow-offres-api/internal/service"
	"github.com/max9849/webflow-offres-api/internal/slug"
	"github.com/max9849/webflow-offres-api/internal/webflow"
)

const maxBodyBytes = 200 << 10 // matches the historical 200kb body cap

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Configuration error")
	}
	logger.Init(cfg.LogLevel)

	webflowClient, err := webflow.NewClient(webflow.Config{
		Token:        cfg.APIToken,
		CollectionID: cfg.CollectionID,
		BaseURL:      cfg.BaseURL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build Webflow client")
	}

	offers := service.NewOfferService(webflowClient, mapper.New(cfg.FieldOverrides, slug.NewGenerator()))
	handler := api.NewHandler(offers)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(secureHeaders())
	r.Use(requestIDMiddleware())
	r.Use(loggerMiddleware())
	r.Use(rateLimitMiddleware(cfg.RateLimitRPM))

	r.GET("/health", handler.Health)

	offres := r.Group("/api")
	{
		offres.GET("/offres", handler.ListOffers)
		offres.POST("/offres", bodyLimit(maxBodyBytes), handler.CreateOffer)
		offres.GET("/offres/:id", handler.GetOffer)
		offres.PUT("/offres/:id", bodyLimit(maxBodyBytes), handler.UpdateOffer)
		offres.DELETE("/offres/:id", handler.DeleteOffer)
		offres.GET("/offres-by-slug/:slug", handler.GetOfferBySlug)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Shutdown error")
	}
	log.Info().Msg("Stopped")
}
