package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo/internal/logger"
	"github.com/MKhiriev/go-todo/models"
)

// todoRepository is the SQL implementation of [TodoRepository] over the
// "todos" table. Every lookup, update and delete filters by id and owner.
type todoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTodoRepository constructs a [TodoRepository] backed by db.
func NewTodoRepository(db *DB, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating todo repository")
	return &todoRepository{
		db:     db,
		logger: logger,
	}
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTodo(s scanner) (models.Todo, error) {
	var todo models.Todo
	err := s.Scan(
		&todo.ID,
		&todo.Title,
		&todo.Description,
		&todo.Status,
		&todo.UserID,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)
	return todo, err
}

// CreateTodo inserts todo as given. A missing owner surfaces as
// [ErrNoUserWasFound].
func (r *todoRepository) CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateTodoQuery(r.db.builder, todo)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.CreateTodo").Msg("failed to build query")
		return models.Todo{}, err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		class := r.db.classify(err)
		if class == ForeignKeyViolation {
			return models.Todo{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*todoRepository.CreateTodo").
			Str("user_id", todo.UserID).
			Bool("retryable", class == Transient).
			Msg("failed to insert todo")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return todo, nil
}

// FindTodo returns the todo id owned by userID or [ErrTodoNotFound].
func (r *todoRepository) FindTodo(ctx context.Context, id, userID string) (models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindTodoQuery(r.db.builder, id, userID)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.FindTodo").Msg("failed to build query")
		return models.Todo{}, err
	}

	todo, err := scanTodo(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Todo{}, ErrTodoNotFound
	case err != nil:
		log.Err(err).Str("func", "*todoRepository.FindTodo").Str("todo_id", id).Msg("failed to scan todo row")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return todo, nil
}

// ListTodos returns one page of the owner's todos, newest first. The result
// is never nil.
func (r *todoRepository) ListTodos(ctx context.Context, filter models.TodoFilter) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTodosQuery(r.db.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.ListTodos").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.ListTodos").Str("user_id", filter.UserID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	todos := make([]models.Todo, 0, filter.Limit)
	for rows.Next() {
		todo, scanErr := scanTodo(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*todoRepository.ListTodos").Msg("failed to scan todo row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		todos = append(todos, todo)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*todoRepository.ListTodos").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return todos, nil
}

// CountTodos returns how many of the owner's todos match filter, ignoring
// its limit and offset.
func (r *todoRepository) CountTodos(ctx context.Context, filter models.TodoFilter) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountTodosQuery(r.db.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.CountTodos").Msg("failed to build query")
		return 0, err
	}

	var total int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*todoRepository.CountTodos").Str("user_id", filter.UserID).Msg("failed to count todos")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// UpdateTodo replaces the mutable fields of the owner's todo and returns the
// stored record.
func (r *todoRepository) UpdateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTodoQuery(r.db.builder, todo)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.UpdateTodo").Msg("failed to build query")
		return models.Todo{}, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.UpdateTodo").Str("todo_id", todo.ID).Msg("failed to update todo")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = ensureAffected(result, ErrTodoNotFound); err != nil {
		return models.Todo{}, err
	}

	return r.FindTodo(ctx, todo.ID, todo.UserID)
}

// DeleteTodo removes the owner's todo; a second delete yields
// [ErrTodoNotFound].
func (r *todoRepository) DeleteTodo(ctx context.Context, id, userID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteTodoQuery(r.db.builder, id, userID)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.DeleteTodo").Msg("failed to build query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.DeleteTodo").Str("todo_id", id).Msg("failed to delete todo")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return ensureAffected(result, ErrTodoNotFound)
}
