// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo/models"
)

func writeNotFound(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, r, http.StatusNotFound, msgRouteNotFound, nil)
}

// buildRouter creates a minimal chi.Mux with a set of routes for tests.
// It intentionally does not use Handler.Init() to avoid service/logger setup.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/todo", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("todos"))
	})
	router.Post("/todo", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Get("/profile", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/todo/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router, writeNotFound))

	return router
}

// ---- Table test ----

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		// Existing route + valid method -> handler responds.
		{"GET /todo passes through", http.MethodGet, "/todo", http.StatusOK},
		{"POST /todo passes through", http.MethodPost, "/todo", http.StatusCreated},
		{"GET /profile passes through", http.MethodGet, "/profile", http.StatusOK},
		{"GET /todo/{id} passes through", http.MethodGet, "/todo/abc", http.StatusOK},
		// Existing route + invalid method -> 404.
		{"DELETE /todo is 404", http.MethodDelete, "/todo", http.StatusNotFound},
		{"PATCH /todo is 404", http.MethodPatch, "/todo", http.StatusNotFound},
		{"POST /profile is 404", http.MethodPost, "/profile", http.StatusNotFound},
		{"PATCH /todo/{id} is 404", http.MethodPatch, "/todo/abc", http.StatusNotFound},
		// Non-existing route: chi returns 404 before MethodNotAllowed.
		{"GET /nonexistent is 404", http.MethodGet, "/nonexistent", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

// ---- Existing route with valid method forwards response body ----

func TestCheckHTTPMethod_PassThroughBody(t *testing.T) {
	router := buildRouter()

	req := httptest.NewRequest(http.MethodGet, "/todo", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "todos", rr.Body.String())
}

// ---- Invalid method always returns the 404 envelope, not 405 ----

func TestCheckHTTPMethod_WrongMethodReturnsNotFoundEnvelope(t *testing.T) {
	router := buildRouter()

	for _, method := range []string{http.MethodDelete, http.MethodPatch, http.MethodOptions, http.MethodPut} {
		t.Run(method+" /todo", func(t *testing.T) {
			req := httptest.NewRequest(method, "/todo", nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			require.Equal(t, http.StatusNotFound, rr.Code,
				"wrong method on existing route should return 404, not 405")

			var env models.Envelope
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
			assert.False(t, env.Success)
			assert.Equal(t, msgRouteNotFound, env.Message)
		})
	}
}
