package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"go-event-booking/internal/model"
	"go-event-booking/internal/service/mocks"
	apperrors "go-event-booking/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAuthHandler() (*gin.Engine, *mocks.AuthServiceMock) {
	svc := mocks.NewAuthServiceMock()
	r := newTestRouter()
	NewAuthHandler(svc).RegisterRoutes(r, nil)
	return r, svc
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, svc := setupAuthHandler()

		req := model.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "password123"}
		svc.On("Register", mock.Anything, req).
			Return(&model.User{ID: 1, Name: "Alice", Email: "alice@example.com"}, nil)

		w := serve(r, jsonRequest(t, http.MethodPost, "/api/register", req))

		assert.Equal(t, http.StatusCreated, w.Code)

		var got model.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, 1, got.ID)
		assert.NotContains(t, w.Body.String(), "password", "the hash must never leave the server")
		svc.AssertExpectations(t)
	})

	t.Run("Failed - duplicate email", func(t *testing.T) {
		r, svc := setupAuthHandler()

		svc.On("Register", mock.Anything, mock.Anything).
			Return(nil, apperrors.ErrDuplicateEmail)

		w := serve(r, jsonRequest(t, http.MethodPost, "/api/register", model.RegisterRequest{
			Name: "Alice", Email: "alice@example.com", Password: "password123",
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Email already registered")
	})

	t.Run("Failed - short password rejected by binding", func(t *testing.T) {
		r, svc := setupAuthHandler()

		w := serve(r, jsonRequest(t, http.MethodPost, "/api/register", map[string]string{
			"name":     "Alice",
			"email":    "alice@example.com",
			"password": "short",
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Register")
	})

	t.Run("Failed - invalid email rejected by binding", func(t *testing.T) {
		r, svc := setupAuthHandler()

		w := serve(r, jsonRequest(t, http.MethodPost, "/api/register", map[string]string{
			"name":     "Alice",
			"email":    "not-an-email",
			"password": "password123",
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Register")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, svc := setupAuthHandler()

		req := model.LoginRequest{Email: "alice@example.com", Password: "password123"}
		svc.On("Login", mock.Anything, req).Return(&model.LoginResponse{
			Token: "signed.jwt.token",
			User:  &model.User{ID: 1, Email: "alice@example.com"},
		}, nil)

		w := serve(r, jsonRequest(t, http.MethodPost, "/api/login", req))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "signed.jwt.token")
	})

	t.Run("Failed - bad credentials", func(t *testing.T) {
		r, svc := setupAuthHandler()

		svc.On("Login", mock.Anything, mock.Anything).
			Return(nil, apperrors.ErrInvalidCredentials)

		w := serve(r, jsonRequest(t, http.MethodPost, "/api/login", model.LoginRequest{
			Email: "alice@example.com", Password: "wrong",
		}))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid email or password")
	})

	t.Run("Failed - service error", func(t *testing.T) {
		r, svc := setupAuthHandler()

		svc.On("Login", mock.Anything, mock.Anything).
			Return(nil, errors.New("connection refused"))

		w := serve(r, jsonRequest(t, http.MethodPost, "/api/login", model.LoginRequest{
			Email: "alice@example.com", Password: "password123",
		}))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Internal server error")
	})
}
