package service

import (
	"github.com/MKhiriev/go-todo/internal/config"
	"github.com/MKhiriev/go-todo/internal/logger"
	"github.com/MKhiriev/go-todo/internal/store"
)

// TodoPageSize is the fixed number of todos returned per listing page.
const TodoPageSize = 5

type Services struct {
	AuthService    AuthService
	ProfileService ProfileService
	TodoService    TodoService
	HealthService  HealthService
}

func NewServices(repositories *store.Repositories, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(repositories.UserRepository, cfg, logger),
		ProfileService: NewProfileValidationService().
			Wrap(NewProfileService(repositories.UserRepository, cfg, logger)),
		TodoService: NewTodoValidationService().
			Wrap(NewTodoService(repositories.TodoRepository, logger)),
		HealthService: NewHealthService(repositories.HealthChecker),
	}
}
