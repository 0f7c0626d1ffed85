package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-todo/internal/logger"
	"github.com/MKhiriev/go-todo/models"
)

const defaultTimeout = 15 * time.Second

type httpTodoClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPTodoClient builds a [TodoClient] for the server at address, e.g.
// "localhost:8080" or "https://todo.example.com/api". A missing scheme means
// http. A timeout of zero or less uses 15 seconds.
func NewHTTPTodoClient(address string, timeout time.Duration, logger *logger.Logger) (TodoClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &httpTodoClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpTodoClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpTodoClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpTodoClient) Health(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpTodoClient) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	return decodeData[models.User](resp)
}

func (h *httpTodoClient) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}

	login, err := decodeData[models.LoginResponse](resp)
	if err != nil {
		return models.LoginResponse{}, err
	}
	if login.Token == "" {
		return models.LoginResponse{}, fmt.Errorf("%w: login returned no token", ErrMalformedResponse)
	}

	h.SetToken(login.Token)
	h.logger.Debug().Str("user_id", login.ID).Msg("logged in")
	return login, nil
}

func (h *httpTodoClient) GetProfile(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/profile")
	if err != nil {
		return models.User{}, fmt.Errorf("get profile request: %w", err)
	}
	return decodeData[models.User](resp)
}

func (h *httpTodoClient) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.User, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Patch("/profile")
	if err != nil {
		return models.User{}, fmt.Errorf("update profile request: %w", err)
	}
	return decodeData[models.User](resp)
}

// DeleteProfile removes the account and forgets the token, which no longer
// resolves to a user.
func (h *httpTodoClient) DeleteProfile(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Delete("/profile")
	if err != nil {
		return models.User{}, fmt.Errorf("delete profile request: %w", err)
	}

	user, err := decodeData[models.User](resp)
	if err != nil {
		return models.User{}, err
	}
	h.SetToken("")
	return user, nil
}

func (h *httpTodoClient) CreateTodo(ctx context.Context, req models.TodoRequest) (models.Todo, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/todo")
	if err != nil {
		return models.Todo{}, fmt.Errorf("create todo request: %w", err)
	}
	return decodeData[models.Todo](resp)
}

func (h *httpTodoClient) GetTodo(ctx context.Context, id string) (models.Todo, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Get("/todo/{id}")
	if err != nil {
		return models.Todo{}, fmt.Errorf("get todo request: %w", err)
	}
	return decodeData[models.Todo](resp)
}

func (h *httpTodoClient) ListTodos(ctx context.Context, page int, search string) (models.TodoList, error) {
	req := h.authedRequest(ctx)
	if page >= 1 {
		req.SetQueryParam("page", strconv.Itoa(page))
	}
	if search != "" {
		req.SetQueryParam("search", search)
	}

	resp, err := req.Get("/todo")
	if err != nil {
		return models.TodoList{}, fmt.Errorf("list todos request: %w", err)
	}
	return decodeData[models.TodoList](resp)
}

func (h *httpTodoClient) UpdateTodo(ctx context.Context, id string, req models.TodoRequest) (models.Todo, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(req).
		Put("/todo/{id}")
	if err != nil {
		return models.Todo{}, fmt.Errorf("update todo request: %w", err)
	}
	return decodeData[models.Todo](resp)
}

func (h *httpTodoClient) DeleteTodo(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/todo/{id}")
	if err != nil {
		return fmt.Errorf("delete todo request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpTodoClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// decodeData maps error statuses and unwraps the envelope data of a
// successful response into T.
func decodeData[T any](resp *resty.Response) (T, error) {
	var zero T
	if err := mapHTTPError(resp); err != nil {
		return zero, err
	}

	var env struct {
		Success bool `json:"success"`
		Data    T    `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return zero, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if !env.Success {
		return zero, fmt.Errorf("%w: success flag is false", ErrMalformedResponse)
	}
	return env.Data, nil
}
