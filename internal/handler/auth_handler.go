package handler

import (
	"errors"
	"net/http"

	"go-event-booking/internal/model"
	"go-event-booking/internal/service"
	apperrors "go-event-booking/pkg/app_errors"
	"go-event-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) RegisterRoutes(r *gin.Engine, limit gin.HandlerFunc) {
	router := r.Group("/api")
	if limit != nil {
		router.Use(limit)
	}
	{
		router.POST("register", h.Register)
		router.POST("login", h.Login)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	user, err := h.service.Register(c, req)
	if err != nil {
		h.handleError(c, err, "Register")
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	resp, err := h.service.Login(c, req)
	if err != nil {
		h.handleError(c, err, "Login")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrDuplicateEmail):
		log.Warn("Duplicate email")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Email already registered",
		})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		log.Warn("Invalid credentials")
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid email or password",
		})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
