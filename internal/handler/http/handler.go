package http

import (
	"time"

	"github.com/MKhiriev/go-todo/internal/config"
	"github.com/MKhiriev/go-todo/internal/logger"
	"github.com/MKhiriev/go-todo/internal/service"
)

type Handler struct {
	services *service.Services

	// cookieMaxAge and secureCookie shape the session cookie set on login.
	cookieMaxAge time.Duration
	secureCookie bool

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		cookieMaxAge:   cfg.App.CookieMaxAge,
		secureCookie:   cfg.App.IsProduction(),
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
