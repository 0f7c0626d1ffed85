// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo/internal/service"
	"github.com/MKhiriev/go-todo/internal/validators"
	"github.com/MKhiriev/go-todo/models"
)

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

// ---- register ----

func TestRegister_Success(t *testing.T) {
	svcs := newTestServices(t)
	svcs.AuthService.(*mockAuthService).registerUserFn = func(_ context.Context, req models.RegisterRequest) (models.User, error) {
		require.NotNil(t, req.Email)
		assert.Equal(t, "alice@example.com", *req.Email)
		return models.User{ID: "u1", Email: *req.Email, Name: *req.Name, Password: "$2a$digest"}, nil
	}

	body := jsonBody(t, models.RegisterRequest{Email: ptr("alice@example.com"), Name: ptr("Alice"), Password: ptr("password1")})
	rr := serve(newTestRouterHandler(svcs), httptest.NewRequest(http.MethodPost, "/auth/register", body))

	require.Equal(t, http.StatusCreated, rr.Code)
	env := envelopeOf(t, rr)
	assert.True(t, env.Success)
	assert.Nil(t, env.Error)
	assert.Equal(t, "User created successfully", env.Message)
	assert.NotContains(t, string(env.Data), "password", "password digest must never be serialised")
	assert.NotContains(t, string(env.Data), "$2a$digest")
}

func TestRegister_Failures(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantMsg    string
		wantEcho   bool
	}{
		{
			name:       "malformed JSON is a bad request",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid JSON was passed",
		},
		{
			name:       "empty body is a bad request",
			body:       ``,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid JSON was passed",
		},
		{
			name:       "validation failure echoes the input",
			body:       `{"email":"not-an-email","name":"A","password":"password1"}`,
			err:        fmt.Errorf("wrapped: %w", &validators.ValidationError{Field: "email", Message: "Email is not valid"}),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Email is not valid",
			wantEcho:   true,
		},
		{
			name:       "duplicate email",
			body:       `{"email":"a@b.io","name":"A","password":"password1"}`,
			err:        service.ErrEmailAlreadyRegistered,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Email has been registered",
		},
		{
			name:       "unexpected failure",
			body:       `{"email":"a@b.io","name":"A","password":"password1"}`,
			err:        errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Error at /auth/register POST: internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices(t)
			if tt.err != nil {
				svcs.AuthService.(*mockAuthService).registerUserFn = func(context.Context, models.RegisterRequest) (models.User, error) {
					return models.User{}, tt.err
				}
			}

			rr := serve(newTestRouterHandler(svcs), httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(tt.body)))

			require.Equal(t, tt.wantStatus, rr.Code)
			env := envelopeOf(t, rr)
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantMsg, env.Message)
			assert.NotContains(t, rr.Body.String(), "disk on fire", "internal details must not leak")

			if tt.wantEcho {
				var echoed models.RegisterRequest
				require.NoError(t, json.Unmarshal(env.Data, &echoed))
				assert.Equal(t, ptr("not-an-email"), echoed.Email)
			} else {
				assert.Equal(t, "null", string(env.Data))
			}
		})
	}
}

// ---- login ----

func TestLogin_Success(t *testing.T) {
	svcs := newTestServices(t)
	auth := svcs.AuthService.(*mockAuthService)
	auth.loginFn = func(_ context.Context, req models.LoginRequest) (models.User, error) {
		return models.User{ID: "u1", Email: *req.Email}, nil
	}
	auth.createTokenFn = func(_ context.Context, user models.User) (models.Token, error) {
		assert.Equal(t, "u1", user.ID)
		return models.Token{SignedString: "signed.jwt.token", UserID: user.ID}, nil
	}

	body := jsonBody(t, models.LoginRequest{Email: ptr("alice@example.com"), Password: ptr("password1")})
	rr := serve(newTestRouterHandler(svcs), httptest.NewRequest(http.MethodPost, "/api/auth/login", body))

	require.Equal(t, http.StatusOK, rr.Code)
	env := envelopeOf(t, rr)
	assert.Equal(t, "Login successfully", env.Message)

	var data models.LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "signed.jwt.token", data.Token)
	assert.Equal(t, "u1", data.ID)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "token", c.Name)
	assert.Equal(t, "signed.jwt.token", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	assert.Equal(t, 2*24*60*60, c.MaxAge)
	assert.False(t, c.Secure, "secure flag is only set in production")
}

func TestLogin_SecureCookieInProduction(t *testing.T) {
	svcs := newTestServices(t)
	auth := svcs.AuthService.(*mockAuthService)
	auth.loginFn = func(context.Context, models.LoginRequest) (models.User, error) { return models.User{ID: "u1"}, nil }
	auth.createTokenFn = func(context.Context, models.User) (models.Token, error) {
		return models.Token{SignedString: "t"}, nil
	}

	h := newTestRouterHandler(svcs)
	h.secureCookie = true
	rr := serve(h, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@b.io","password":"x"}`)))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, rr.Result().Cookies(), 1)
	assert.True(t, rr.Result().Cookies()[0].Secure)
}

func TestLogin_SameMessageDifferentStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "unknown email", err: service.ErrUserNotFound, wantStatus: http.StatusNotFound},
		{name: "wrong password", err: service.ErrWrongPassword, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices(t)
			svcs.AuthService.(*mockAuthService).loginFn = func(context.Context, models.LoginRequest) (models.User, error) {
				return models.User{}, tt.err
			}

			rr := serve(newTestRouterHandler(svcs),
				httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@b.io","password":"x"}`)))

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "Wrong email or password", envelopeOf(t, rr).Message)
			assert.Empty(t, rr.Result().Cookies())
		})
	}
}

func TestLogin_TokenCreationFails(t *testing.T) {
	svcs := newTestServices(t)
	auth := svcs.AuthService.(*mockAuthService)
	auth.loginFn = func(context.Context, models.LoginRequest) (models.User, error) { return models.User{ID: "u1"}, nil }
	auth.createTokenFn = func(context.Context, models.User) (models.Token, error) {
		return models.Token{}, service.ErrTokenCreationFailed
	}

	rr := serve(newTestRouterHandler(svcs),
		httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@b.io","password":"x"}`)))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Error at /auth/login POST: internal server error", envelopeOf(t, rr).Message)
	assert.Empty(t, rr.Result().Cookies())
}
