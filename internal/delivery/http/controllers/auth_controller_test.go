package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eventpulse/internal/domain"

	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type mockAuthService struct {
	RegisterFn func(ctx context.Context, name, email, password, role string) (*domain.User, error)
	LoginFn    func(ctx context.Context, email, password string) (string, error)
}

func (m *mockAuthService) Register(ctx context.Context, name, email, password, role string) (*domain.User, error) {
	return m.RegisterFn(ctx, name, email, password, role)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return m.LoginFn(ctx, email, password)
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func TestAuthController_Register(t *testing.T) {
	svc := &mockAuthService{
		RegisterFn: func(_ context.Context, name, email, password, role string) (*domain.User, error) {
			return &domain.User{
				ID:           "u-1",
				Name:         name,
				Email:        email,
				PasswordHash: "secret-hash",
				Role:         domain.RoleUser,
				CreatedAt:    time.Now(),
			}, nil
		},
	}
	ctrl := NewAuthController(testLogger, svc)

	body := `{"name":"Alice","email":"alice@example.com","password":"s3cret-pass"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ctrl.Register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var user domain.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	require.Equal(t, "u-1", user.ID)
	require.Equal(t, "alice@example.com", user.Email)

	// hash and salt never leave the server
	require.NotContains(t, rec.Body.String(), "secret-hash")
}

func TestAuthController_Register_badRequests(t *testing.T) {
	ctrl := NewAuthController(testLogger, &mockAuthService{})

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"name":`},
		{"unknown field", `{"name":"A","email":"a@b.co","password":"s3cret-pass","admin":true}`},
		{"missing password", `{"name":"A","email":"a@b.co"}`},
		{"short password", `{"name":"A","email":"a@b.co","password":"short"}`},
		{"bad email", `{"name":"A","email":"nope","password":"s3cret-pass"}`},
		{"bad role", `{"name":"A","email":"a@b.co","password":"s3cret-pass","role":"root"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			ctrl.Register(rec, req)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.NotEmpty(t, errorMessage(t, rec))
		})
	}
}

func TestAuthController_Register_duplicateEmail(t *testing.T) {
	svc := &mockAuthService{
		RegisterFn: func(context.Context, string, string, string, string) (*domain.User, error) {
			return nil, domain.ErrDuplicateEmail
		},
	}
	ctrl := NewAuthController(testLogger, svc)

	body := `{"name":"Alice","email":"alice@example.com","password":"s3cret-pass"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ctrl.Register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Email already registered", errorMessage(t, rec))
}

func TestAuthController_Login(t *testing.T) {
	svc := &mockAuthService{
		LoginFn: func(_ context.Context, email, password string) (string, error) {
			require.Equal(t, "alice@example.com", email)
			return "signed.jwt.token", nil
		},
	}
	ctrl := NewAuthController(testLogger, svc)

	body := `{"email":"alice@example.com","password":"s3cret-pass"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ctrl.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "signed.jwt.token", resp.Token)
}

func TestAuthController_Login_invalidCredentials(t *testing.T) {
	svc := &mockAuthService{
		LoginFn: func(context.Context, string, string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	ctrl := NewAuthController(testLogger, svc)

	body := `{"email":"alice@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ctrl.Login(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Invalid credentials", errorMessage(t, rec))
}
