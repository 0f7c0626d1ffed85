package service

import (
	"context"

	"github.com/MKhiriev/go-todo/models"
)

// AuthService registers users, checks credentials and issues session tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProfileService operates on the account of the authenticated caller. The
// user id always comes from a verified token, never from request input.
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (models.User, error)
	UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.User, error)
	DeleteProfile(ctx context.Context, userID string) (models.User, error)
}

// TodoService manages the todos of one owner. A todo of another user is
// reported exactly like a missing one.
type TodoService interface {
	CreateTodo(ctx context.Context, userID string, req models.TodoRequest) (models.Todo, error)
	GetTodo(ctx context.Context, id, userID string) (models.Todo, error)
	ListTodos(ctx context.Context, userID string, page int, search string) (models.TodoList, error)
	UpdateTodo(ctx context.Context, id, userID string, req models.TodoRequest) (models.Todo, error)
	DeleteTodo(ctx context.Context, id, userID string) error
}

// TodoServiceWrapper defines middleware composition for TodoService.
// Implementations wrap an existing TodoService to add behavior such as
// validating.
type TodoServiceWrapper interface {
	Wrap(TodoService) TodoService // returns a decorated TodoService applying additional behavior
}

// ProfileServiceWrapper is the ProfileService counterpart of
// TodoServiceWrapper.
type ProfileServiceWrapper interface {
	Wrap(ProfileService) ProfileService
}

// HealthService reports whether the dependencies of the server are usable.
type HealthService interface {
	Check(ctx context.Context) error
}
