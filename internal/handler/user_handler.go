package handler

import (
	"errors"
	"net/http"

	"go-event-booking/internal/middleware"
	"go-event-booking/internal/model"
	"go-event-booking/internal/service"
	apperrors "go-event-booking/pkg/app_errors"
	"go-event-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	router := r.Group("/api")
	router.Use(auth)
	{
		router.GET("profile", h.GetProfile)
		router.PUT("profile", h.UpdateProfile)
		router.GET("dashboard", h.GetDashboard)
	}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, err := h.service.GetProfile(c, middleware.UserID(c))
	if err != nil {
		h.handleError(c, err, "GetProfile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req model.UpdateProfileRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	user, err := h.service.UpdateProfile(c, middleware.UserID(c), req)
	if err != nil {
		h.handleError(c, err, "UpdateProfile")
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.service.GetDashboard(c, middleware.UserID(c))
	if err != nil {
		h.handleError(c, err, "GetDashboard")
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

func (h *UserHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		log.Warn("User not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "User not found",
		})
	case errors.Is(err, apperrors.ErrDuplicateEmail):
		log.Warn("Duplicate email")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Email already registered",
		})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Nothing to update",
		})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
