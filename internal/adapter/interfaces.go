// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the go-todo HTTP API.
//
// [TodoClient] hides the envelope format: successful calls return the decoded
// data payload, failed calls return an error wrapping one of the sentinel
// values in errors.go (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401)
// together with the server's message.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-todo/models"
)

// TodoClient is the client-side view of the API. Methods other than
// Register, Login and Health need a token, set by Login or SetToken.
type TodoClient interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	Health(ctx context.Context) error

	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates and stores the issued token for later calls.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	GetProfile(ctx context.Context) (models.User, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.User, error)
	DeleteProfile(ctx context.Context) (models.User, error)

	CreateTodo(ctx context.Context, req models.TodoRequest) (models.Todo, error)
	GetTodo(ctx context.Context, id string) (models.Todo, error)

	// ListTodos fetches one page of the caller's todos. A page below 1 and an
	// empty search are left out of the query.
	ListTodos(ctx context.Context, page int, search string) (models.TodoList, error)

	UpdateTodo(ctx context.Context, id string, req models.TodoRequest) (models.Todo, error)
	DeleteTodo(ctx context.Context, id string) error
}
