package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo/internal/service"
	"github.com/MKhiriev/go-todo/internal/validators"
	"github.com/MKhiriev/go-todo/models"
)

func TestListTodos_QueryParams(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantPage   int
		wantSearch string
	}{
		{name: "defaults", target: "/todo", wantPage: 1},
		{name: "explicit page and search", target: "/todo?page=3&search=milk", wantPage: 3, wantSearch: "milk"},
		{name: "non-numeric page", target: "/todo?page=abc", wantPage: 1},
		{name: "negative page", target: "/todo?page=-2", wantPage: 1},
		{name: "under /api", target: "/api/todo?page=2", wantPage: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices(t)
			svcs.TodoService.(*mockTodoService).listFn = func(_ context.Context, userID string, page int, search string) (models.TodoList, error) {
				assert.Equal(t, testUserID, userID)
				assert.Equal(t, tt.wantPage, page)
				assert.Equal(t, tt.wantSearch, search)
				return models.TodoList{Todos: []models.Todo{{ID: "t1"}}, Pagination: models.NewPagination(page, 5, 1)}, nil
			}

			rr := serve(newTestRouterHandler(svcs), authed(http.MethodGet, tt.target, ""))

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "Todos fetched successfully", envelopeOf(t, rr).Message)
		})
	}
}

func TestListTodos_EmptyPage(t *testing.T) {
	svcs := newTestServices(t)
	svcs.TodoService.(*mockTodoService).listFn = func(_ context.Context, _ string, page int, _ string) (models.TodoList, error) {
		return models.TodoList{Todos: []models.Todo{}, Pagination: models.NewPagination(page, 5, 12)}, nil
	}

	rr := serve(newTestRouterHandler(svcs), authed(http.MethodGet, "/todo?page=4", ""))

	require.Equal(t, http.StatusOK, rr.Code)
	env := envelopeOf(t, rr)
	assert.True(t, env.Success)
	assert.Equal(t, "No todos found", env.Message)

	var data struct {
		Todos      json.RawMessage   `json:"todos"`
		Pagination models.Pagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "[]", string(data.Todos), "todos must be an array, not null")
	assert.Equal(t, models.Pagination{Total: 12, Page: 4, Limit: 5, TotalPages: 3}, data.Pagination)
}

func TestCreateTodo(t *testing.T) {
	svcs := newTestServices(t)
	svcs.TodoService.(*mockTodoService).createFn = func(_ context.Context, userID string, req models.TodoRequest) (models.Todo, error) {
		assert.Equal(t, testUserID, userID)
		require.NotNil(t, req.Title)
		return models.Todo{ID: "t1", Title: *req.Title, Status: models.StatusPending, UserID: userID}, nil
	}

	rr := serve(newTestRouterHandler(svcs), authed(http.MethodPost, "/todo", `{"title":"buy milk"}`))

	require.Equal(t, http.StatusCreated, rr.Code)
	env := envelopeOf(t, rr)
	assert.Equal(t, "Todo created successfully", env.Message)

	var todo models.Todo
	require.NoError(t, json.Unmarshal(env.Data, &todo))
	assert.Equal(t, "buy milk", todo.Title)
	assert.Equal(t, models.StatusPending, todo.Status)
}

func TestCreateTodo_MissingTitle(t *testing.T) {
	svcs := newTestServices(t)
	svcs.TodoService.(*mockTodoService).createFn = func(context.Context, string, models.TodoRequest) (models.Todo, error) {
		return models.Todo{}, fmt.Errorf("validation: %w", &validators.ValidationError{Field: "title", Message: "Title is required"})
	}

	rr := serve(newTestRouterHandler(svcs), authed(http.MethodPost, "/todo", `{"description":"no title"}`))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	env := envelopeOf(t, rr)
	assert.Equal(t, "Title is required", env.Message)
	assert.Contains(t, string(env.Data), `"description":"no title"`, "input is echoed back")
}

func TestTodoItemRoutes_NotOwnedIs404(t *testing.T) {
	svcs := newTestServices(t)
	todos := svcs.TodoService.(*mockTodoService)
	todos.getFn = func(_ context.Context, id, userID string) (models.Todo, error) {
		assert.Equal(t, "t-other", id)
		assert.Equal(t, testUserID, userID)
		return models.Todo{}, service.ErrTodoNotFound
	}
	todos.updateFn = func(_ context.Context, id, userID string, _ models.TodoRequest) (models.Todo, error) {
		assert.Equal(t, "t-other", id)
		return models.Todo{}, service.ErrTodoNotFound
	}
	todos.deleteFn = func(_ context.Context, id, userID string) error {
		assert.Equal(t, "t-other", id)
		return service.ErrTodoNotFound
	}
	h := newTestRouterHandler(svcs)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			rr := serve(h, authed(method, "/todo/t-other", `{"title":"x"}`))
			require.Equal(t, http.StatusNotFound, rr.Code, "never 403")
			assert.Equal(t, "Todo not found", envelopeOf(t, rr).Message)
		})
	}
}

func TestTodoItemRoutes_Success(t *testing.T) {
	svcs := newTestServices(t)
	todos := svcs.TodoService.(*mockTodoService)
	todos.getFn = func(_ context.Context, id, _ string) (models.Todo, error) {
		return models.Todo{ID: id}, nil
	}
	todos.updateFn = func(_ context.Context, id, _ string, req models.TodoRequest) (models.Todo, error) {
		assert.Equal(t, models.StatusCompleted, req.Status)
		return models.Todo{ID: id, Title: *req.Title, Status: req.Status}, nil
	}
	todos.deleteFn = func(context.Context, string, string) error { return nil }
	h := newTestRouterHandler(svcs)

	tests := []struct {
		method  string
		body    string
		wantMsg string
	}{
		{http.MethodGet, "", "Todo found successfully"},
		{http.MethodPut, `{"title":"done","status":"COMPLETED"}`, "Todo updated successfully"},
		{http.MethodDelete, "", "Todo deleted successfully"},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			rr := serve(h, authed(tt.method, "/api/todo/t1", tt.body))
			require.Equal(t, http.StatusOK, rr.Code)
			env := envelopeOf(t, rr)
			assert.Equal(t, tt.wantMsg, env.Message)
			if tt.method == http.MethodDelete {
				assert.Equal(t, "null", string(env.Data))
			} else {
				assert.Contains(t, string(env.Data), `"id":"t1"`)
			}
		})
	}
}

func TestDeleteTodo_RepeatedIs404(t *testing.T) {
	svcs := newTestServices(t)
	deleted := false
	svcs.TodoService.(*mockTodoService).deleteFn = func(context.Context, string, string) error {
		if deleted {
			return service.ErrTodoNotFound
		}
		deleted = true
		return nil
	}
	h := newTestRouterHandler(svcs)

	assert.Equal(t, http.StatusOK, serve(h, authed(http.MethodDelete, "/todo/t1", "")).Code)
	assert.Equal(t, http.StatusNotFound, serve(h, authed(http.MethodDelete, "/todo/t1", "")).Code)
}

func TestUpdateTodo_InternalErrorNamesRoute(t *testing.T) {
	svcs := newTestServices(t)
	svcs.TodoService.(*mockTodoService).updateFn = func(context.Context, string, string, models.TodoRequest) (models.Todo, error) {
		return models.Todo{}, fmt.Errorf("todo update failed: %w", context.Canceled)
	}

	rr := serve(newTestRouterHandler(svcs), authed(http.MethodPut, "/api/todo/t1", `{"title":"x"}`))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	env := envelopeOf(t, rr)
	assert.Equal(t, "Error at /api/todo/{id} PUT: internal server error", env.Message)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Internal Server Error", *env.Error)
	assert.False(t, strings.Contains(rr.Body.String(), "canceled"))
}
