// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-todo/internal/logger"
	"github.com/MKhiriev/go-todo/internal/store"
	"github.com/MKhiriev/go-todo/internal/utils"
	"github.com/MKhiriev/go-todo/models"
)

// todoService is the concrete implementation of TodoService on top of a
// TodoRepository. Requests reaching it are expected to be validated already.
type todoService struct {
	todoRepository store.TodoRepository
	ids            *utils.UUIDGenerator
	logger         *logger.Logger
}

// NewTodoService returns a TodoService without request validation.
// Wrap it with NewTodoValidationService before exposing it to handlers.
func NewTodoService(todoRepository store.TodoRepository, logger *logger.Logger) TodoService {
	return &todoService{
		todoRepository: todoRepository,
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// CreateTodo stores a new todo owned by userID. Id and timestamps are
// assigned here.
func (s *todoService) CreateTodo(ctx context.Context, userID string, req models.TodoRequest) (models.Todo, error) {
	now := time.Now().UTC()
	todo := models.Todo{
		ID:          s.ids.Generate(),
		Title:       deref(req.Title),
		Description: req.Description,
		Status:      req.Status,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if todo.Status == "" {
		todo.Status = models.StatusPending
	}

	created, err := s.todoRepository.CreateTodo(ctx, todo)
	if err != nil {
		return models.Todo{}, s.mapTodoError(ctx, err, "todo creation failed")
	}

	return created, nil
}

func (s *todoService) GetTodo(ctx context.Context, id, userID string) (models.Todo, error) {
	todo, err := s.todoRepository.FindTodo(ctx, id, userID)
	if err != nil {
		return models.Todo{}, s.mapTodoError(ctx, err, "todo search failed")
	}

	return todo, nil
}

// ListTodos returns one page of the owner's todos, newest first, with
// pagination metadata. Pages below 1 are treated as 1. The page and the total
// count are fetched concurrently; the first failure cancels the other query.
func (s *todoService) ListTodos(ctx context.Context, userID string, page int, search string) (models.TodoList, error) {
	if page < 1 {
		page = 1
	}

	pagination := models.NewPagination(page, TodoPageSize, 0)
	filter := models.TodoFilter{
		UserID: userID,
		Search: strings.TrimSpace(search),
		Limit:  uint64(pagination.Limit),
		Offset: uint64(pagination.Offset()),
	}

	var (
		todos []models.Todo
		total int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		todos, err = s.todoRepository.ListTodos(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.todoRepository.CountTodos(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("todo listing failed")
		return models.TodoList{}, fmt.Errorf("todo listing failed: %w", err)
	}

	if todos == nil {
		todos = []models.Todo{}
	}

	return models.TodoList{
		Todos:      todos,
		Pagination: models.NewPagination(page, TodoPageSize, total),
	}, nil
}

// UpdateTodo replaces title, description and status of the owner's todo.
func (s *todoService) UpdateTodo(ctx context.Context, id, userID string, req models.TodoRequest) (models.Todo, error) {
	todo := models.Todo{
		ID:          id,
		Title:       deref(req.Title),
		Description: req.Description,
		Status:      req.Status,
		UserID:      userID,
		UpdatedAt:   time.Now().UTC(),
	}
	if todo.Status == "" {
		todo.Status = models.StatusPending
	}

	updated, err := s.todoRepository.UpdateTodo(ctx, todo)
	if err != nil {
		return models.Todo{}, s.mapTodoError(ctx, err, "todo update failed")
	}

	return updated, nil
}

func (s *todoService) DeleteTodo(ctx context.Context, id, userID string) error {
	if err := s.todoRepository.DeleteTodo(ctx, id, userID); err != nil {
		return s.mapTodoError(ctx, err, "todo deletion failed")
	}

	return nil
}

func (s *todoService) mapTodoError(ctx context.Context, err error, msg string) error {
	switch {
	case errors.Is(err, store.ErrTodoNotFound):
		return ErrTodoNotFound
	case errors.Is(err, store.ErrNoUserWasFound):
		// the owner was deleted while its token is still valid
		return ErrUserNotFound
	default:
		logger.FromContext(ctx).Err(err).Msg(msg)
		return fmt.Errorf("%s: %w", msg, err)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
