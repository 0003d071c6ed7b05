package handler

import (
	"context"
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

type EventHandler struct {
	service     service.EventService
	invalidator *middleware.CacheInvalidator
}

func NewEventHandler(service service.EventService, invalidator *middleware.CacheInvalidator) *EventHandler {
	return &EventHandler{service: service, invalidator: invalidator}
}

// RegisterRoutes wires the event CRUD. Listing is public (and cached when a
// cache middleware is supplied); everything else requires a valid token.
func (h *EventHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc, cache gin.HandlerFunc) {
	public := r.Group("/api")
	if cache != nil {
		public.GET("events", cache, h.List)
	} else {
		public.GET("events", h.List)
	}

	router := r.Group("/api")
	router.Use(auth)
	{
		router.POST("events", h.Create)
		router.GET("events/:id", h.Get)
		router.PUT("events/:id", h.Update)
		router.DELETE("events/:id", h.Delete)
	}
}

func (h *EventHandler) List(c *gin.Context) {
	var page model.PageQuery
	if err := BindQuery(c, &page); err != nil {
		return
	}

	events, pagination, err := h.service.List(c, page)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events":     events,
		"pagination": pagination,
	})
}

func (h *EventHandler) Get(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}

	event, err := h.service.Get(c, id, middleware.UserID(c))
	if err != nil {
		h.handleError(c, err, "Get")
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req model.CreateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	created, err := h.service.Create(c, middleware.UserID(c), req)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}

	h.purgeListCache(c)
	c.JSON(http.StatusCreated, created)
}

func (h *EventHandler) Update(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}

	var params model.UpdateEventParams
	if err := BindJson(c, &params); err != nil {
		return
	}

	updated, err := h.service.Update(c, id, middleware.UserID(c), params)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}

	h.purgeListCache(c)
	c.JSON(http.StatusOK, updated)
}

func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c, id, middleware.UserID(c)); err != nil {
		h.handleError(c, err, "Delete")
		return
	}

	h.purgeListCache(c)
	c.JSON(http.StatusOK, gin.H{
		"message": "Event deleted",
	})
}

func (h *EventHandler) purgeListCache(c *gin.Context) {
	if h.invalidator != nil {
		h.invalidator.PurgeEventLists(context.Background())
	}
}

func (h *EventHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Event not found",
		})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input",
		})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
