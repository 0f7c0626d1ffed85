package store

import (
	"context"

	"github.com/MKhiriev/go-todo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user with its id and timestamps already assigned.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// UpdateUser writes the non-nil fields of update and returns the stored
	// record.
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)
	// DeleteUser removes the user and, through the foreign key, its todos.
	// The record as it was before deletion is returned.
	DeleteUser(ctx context.Context, id string) (models.User, error)
}

// TodoRepository persists todos. Every single-item method is scoped to the
// owner: a todo of another user behaves exactly like a missing one.
type TodoRepository interface {
	CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error)
	FindTodo(ctx context.Context, id, userID string) (models.Todo, error)
	ListTodos(ctx context.Context, filter models.TodoFilter) ([]models.Todo, error)
	CountTodos(ctx context.Context, filter models.TodoFilter) (int, error)
	// UpdateTodo replaces title, description, status and updated_at of the
	// todo matching todo.ID and todo.UserID.
	UpdateTodo(ctx context.Context, todo models.Todo) (models.Todo, error)
	DeleteTodo(ctx context.Context, id, userID string) error
}

// HealthChecker reports whether the storage backend is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
