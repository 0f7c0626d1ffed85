package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_RoutesAreMountedTwice(t *testing.T) {
	router := newTestRouterHandler(newTestServices(t)).Init()

	registered := map[string]bool{}
	err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	require.NoError(t, err)

	assert.True(t, registered["GET /health"])
	for _, route := range []string{
		"POST /auth/register",
		"POST /auth/login",
		"GET /profile",
		"PATCH /profile",
		"DELETE /profile",
		"GET /todo",
		"POST /todo",
		"GET /todo/{id}",
		"PUT /todo/{id}",
		"DELETE /todo/{id}",
	} {
		method, path, _ := strings.Cut(route, " ")
		assert.True(t, registered[route], "missing %s", route)
		assert.True(t, registered[method+" /api"+path], "missing %s under /api", route)
	}
}

func TestInit_UnknownRoute(t *testing.T) {
	h := newTestRouterHandler(newTestServices(t))

	for _, target := range []string{"/nope", "/api/nope", "/todos"} {
		t.Run(target, func(t *testing.T) {
			rr := serve(h, httptest.NewRequest(http.MethodGet, target, nil))
			require.Equal(t, http.StatusNotFound, rr.Code)
			env := envelopeOf(t, rr)
			assert.False(t, env.Success)
			assert.Equal(t, "Route not found", env.Message)
			require.NotNil(t, env.Error)
			assert.Equal(t, "Not Found", *env.Error)
		})
	}
}

func TestInit_WrongMethodIsNotFound(t *testing.T) {
	h := newTestRouterHandler(newTestServices(t))

	rr := serve(h, httptest.NewRequest(http.MethodPut, "/profile", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Route not found", envelopeOf(t, rr).Message)
}

func TestInit_ProtectedRoutesNeedToken(t *testing.T) {
	h := newTestRouterHandler(newTestServices(t))

	for _, target := range []string{"/todo", "/api/todo", "/todo/t1", "/profile", "/api/profile"} {
		t.Run(target, func(t *testing.T) {
			rr := serve(h, httptest.NewRequest(http.MethodGet, target, nil))
			require.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "Unauthorized: No token provided", envelopeOf(t, rr).Message)
		})
	}
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "database reachable", wantStatus: http.StatusOK, wantMsg: "OK"},
		{name: "database down", err: errors.New("database is unreachable"), wantStatus: http.StatusServiceUnavailable, wantMsg: "Service unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices(t)
			svcs.HealthService = &mockHealthService{err: tt.err}

			rr := serve(newTestRouterHandler(svcs), httptest.NewRequest(http.MethodGet, "/health", nil))

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMsg, envelopeOf(t, rr).Message)
		})
	}
}

type panicHealth struct{}

func (panicHealth) Check(context.Context) error { panic("boom") }

func TestInit_RecoversFromPanic(t *testing.T) {
	svcs := newTestServices(t)
	svcs.HealthService = panicHealth{}

	rr := serve(newTestRouterHandler(svcs), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
