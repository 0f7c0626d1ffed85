package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-todo/internal/config"
	"github.com/MKhiriev/go-todo/internal/logger"
)

func TestNewHandler(t *testing.T) {
	svcs := newTestServices(t)

	tests := []struct {
		name       string
		env        string
		wantSecure bool
	}{
		{name: "development", env: "development", wantSecure: false},
		{name: "production", env: config.EnvProduction, wantSecure: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.StructuredConfig{
				App:    config.App{Env: tt.env, CookieMaxAge: time.Hour},
				Server: config.Server{RequestTimeout: 5 * time.Second},
			}

			h := NewHandler(svcs, cfg, logger.Nop())

			assert.Same(t, svcs, h.services)
			assert.Equal(t, time.Hour, h.cookieMaxAge)
			assert.Equal(t, 5*time.Second, h.requestTimeout)
			assert.Equal(t, tt.wantSecure, h.secureCookie)
		})
	}
}
