package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo/internal/logger"
	"github.com/MKhiriev/go-todo/internal/service"
	"github.com/MKhiriev/go-todo/internal/utils"
	"github.com/MKhiriev/go-todo/models"
)

// ─────────────────────────────────────────────
// Service mocks. A nil func field fails the test when called.
// ─────────────────────────────────────────────

type mockAuthService struct {
	t              *testing.T
	registerUserFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if m.registerUserFn == nil {
		m.t.Fatal("unexpected RegisterUser call")
	}
	return m.registerUserFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if m.loginFn == nil {
		m.t.Fatal("unexpected Login call")
	}
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn == nil {
		m.t.Fatal("unexpected CreateToken call")
	}
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn == nil {
		m.t.Fatal("unexpected ParseToken call")
	}
	return m.parseTokenFn(ctx, tokenString)
}

type mockProfileService struct {
	t        *testing.T
	getFn    func(ctx context.Context, userID string) (models.User, error)
	updateFn func(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.User, error)
	deleteFn func(ctx context.Context, userID string) (models.User, error)
}

func (m *mockProfileService) GetProfile(ctx context.Context, userID string) (models.User, error) {
	if m.getFn == nil {
		m.t.Fatal("unexpected GetProfile call")
	}
	return m.getFn(ctx, userID)
}

func (m *mockProfileService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.User, error) {
	if m.updateFn == nil {
		m.t.Fatal("unexpected UpdateProfile call")
	}
	return m.updateFn(ctx, userID, req)
}

func (m *mockProfileService) DeleteProfile(ctx context.Context, userID string) (models.User, error) {
	if m.deleteFn == nil {
		m.t.Fatal("unexpected DeleteProfile call")
	}
	return m.deleteFn(ctx, userID)
}

type mockTodoService struct {
	t        *testing.T
	createFn func(ctx context.Context, userID string, req models.TodoRequest) (models.Todo, error)
	getFn    func(ctx context.Context, id, userID string) (models.Todo, error)
	listFn   func(ctx context.Context, userID string, page int, search string) (models.TodoList, error)
	updateFn func(ctx context.Context, id, userID string, req models.TodoRequest) (models.Todo, error)
	deleteFn func(ctx context.Context, id, userID string) error
}

func (m *mockTodoService) CreateTodo(ctx context.Context, userID string, req models.TodoRequest) (models.Todo, error) {
	if m.createFn == nil {
		m.t.Fatal("unexpected CreateTodo call")
	}
	return m.createFn(ctx, userID, req)
}

func (m *mockTodoService) GetTodo(ctx context.Context, id, userID string) (models.Todo, error) {
	if m.getFn == nil {
		m.t.Fatal("unexpected GetTodo call")
	}
	return m.getFn(ctx, id, userID)
}

func (m *mockTodoService) ListTodos(ctx context.Context, userID string, page int, search string) (models.TodoList, error) {
	if m.listFn == nil {
		m.t.Fatal("unexpected ListTodos call")
	}
	return m.listFn(ctx, userID, page, search)
}

func (m *mockTodoService) UpdateTodo(ctx context.Context, id, userID string, req models.TodoRequest) (models.Todo, error) {
	if m.updateFn == nil {
		m.t.Fatal("unexpected UpdateTodo call")
	}
	return m.updateFn(ctx, id, userID, req)
}

func (m *mockTodoService) DeleteTodo(ctx context.Context, id, userID string) error {
	if m.deleteFn == nil {
		m.t.Fatal("unexpected DeleteTodo call")
	}
	return m.deleteFn(ctx, id, userID)
}

type mockHealthService struct {
	err error
}

func (m *mockHealthService) Check(_ context.Context) error {
	return m.err
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// testUserID is what the stub token parser resolves every token to.
const testUserID = "user-1"

// newTestServices returns services whose ParseToken accepts "Bearer good"
// for testUserID and rejects anything else.
func newTestServices(t *testing.T) *service.Services {
	t.Helper()
	return &service.Services{
		AuthService: &mockAuthService{t: t, parseTokenFn: func(_ context.Context, s string) (models.Token, error) {
			if s != "good" {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{UserID: testUserID, SignedString: s}, nil
		}},
		ProfileService: &mockProfileService{t: t},
		TodoService:    &mockTodoService{t: t},
		HealthService:  &mockHealthService{},
	}
}

func newTestRouterHandler(svcs *service.Services) *Handler {
	return &Handler{
		services:     svcs,
		cookieMaxAge: 48 * time.Hour,
		logger:       logger.Nop(),
	}
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

// withUser marks r as authenticated for direct handler calls.
func withUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(utils.WithUserID(r.Context(), userID))
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

// rawEnvelope keeps Data undecoded for a second decode into the expected
// type.
type rawEnvelope struct {
	StatusCode int             `json:"statusCode"`
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Error      *string         `json:"error"`
}

func envelopeOf(t *testing.T, rr *httptest.ResponseRecorder) rawEnvelope {
	t.Helper()
	var env rawEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), "body: %s", rr.Body.String())
	require.Equal(t, rr.Code, env.StatusCode, "envelope status must match HTTP status")
	return env
}

func ptr[T any](v T) *T { return &v }
