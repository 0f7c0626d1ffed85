package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo/internal/validators"
	"github.com/MKhiriev/go-todo/models"
)

// TodoValidationService checks todo payloads before they reach the wrapped
// TodoService. A failed check never reaches persistence.
type TodoValidationService struct {
	inner     TodoService
	validator validators.Validator
}

func NewTodoValidationService() TodoServiceWrapper {
	return &TodoValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *TodoValidationService) CreateTodo(ctx context.Context, userID string, req models.TodoRequest) (models.Todo, error) {
	if err := v.validator.Validate(ctx, &req); err != nil {
		return models.Todo{}, fmt.Errorf("error during todo validation before saving: %w", err)
	}

	return v.inner.CreateTodo(ctx, userID, req)
}

func (v *TodoValidationService) GetTodo(ctx context.Context, id, userID string) (models.Todo, error) {
	return v.inner.GetTodo(ctx, id, userID)
}

func (v *TodoValidationService) ListTodos(ctx context.Context, userID string, page int, search string) (models.TodoList, error) {
	return v.inner.ListTodos(ctx, userID, page, search)
}

func (v *TodoValidationService) UpdateTodo(ctx context.Context, id, userID string, req models.TodoRequest) (models.Todo, error) {
	if err := v.validator.Validate(ctx, &req); err != nil {
		return models.Todo{}, fmt.Errorf("error during todo validation before updating: %w", err)
	}

	return v.inner.UpdateTodo(ctx, id, userID, req)
}

func (v *TodoValidationService) DeleteTodo(ctx context.Context, id, userID string) error {
	return v.inner.DeleteTodo(ctx, id, userID)
}

func (v *TodoValidationService) Wrap(wrapped TodoService) TodoService {
	v.inner = wrapped
	return v
}

// ProfileValidationService checks profile updates before they reach the
// wrapped ProfileService.
type ProfileValidationService struct {
	inner     ProfileService
	validator validators.Validator
}

func NewProfileValidationService() ProfileServiceWrapper {
	return &ProfileValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *ProfileValidationService) GetProfile(ctx context.Context, userID string) (models.User, error) {
	return v.inner.GetProfile(ctx, userID)
}

func (v *ProfileValidationService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, &req); err != nil {
		return models.User{}, fmt.Errorf("error during profile validation before updating: %w", err)
	}

	return v.inner.UpdateProfile(ctx, userID, req)
}

func (v *ProfileValidationService) DeleteProfile(ctx context.Context, userID string) (models.User, error) {
	return v.inner.DeleteProfile(ctx, userID)
}

func (v *ProfileValidationService) Wrap(wrapped ProfileService) ProfileService {
	v.inner = wrapped
	return v
}
