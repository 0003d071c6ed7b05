package handler

import (
	"context"
	"net/http"

	"go-event-booking/internal/middleware"
	"go-event-booking/internal/model"
	"go-event-booking/internal/service"
	"go-event-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoomHandler exposes bulk operations over event locations. A room is not a
// stored entity; it is the group of events sharing a location string.
type RoomHandler struct {
	service     service.EventService
	invalidator *middleware.CacheInvalidator
}

func NewRoomHandler(service service.EventService, invalidator *middleware.CacheInvalidator) *RoomHandler {
	return &RoomHandler{service: service, invalidator: invalidator}
}

func (h *RoomHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	router := r.Group("/api")
	router.Use(auth)
	{
		router.GET("rooms", h.List)
		router.POST("rooms", h.Rename)
		router.DELETE("rooms/:name", h.Delete)
	}
}

func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.service.ListRooms(c)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rooms": rooms,
	})
}

func (h *RoomHandler) Rename(c *gin.Context) {
	var req model.RenameRoomRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	renamed, err := h.service.RenameRoom(c, middleware.UserID(c), req)
	if err != nil {
		h.handleError(c, err, "Rename")
		return
	}

	h.purgeListCache()
	c.JSON(http.StatusOK, gin.H{
		"message": "Room renamed",
		"events":  renamed,
	})
}

func (h *RoomHandler) Delete(c *gin.Context) {
	name := c.Param("name")

	deleted, err := h.service.DeleteRoom(c, middleware.UserID(c), name)
	if err != nil {
		h.handleError(c, err, "Delete")
		return
	}

	h.purgeListCache()
	c.JSON(http.StatusOK, gin.H{
		"message": "Room deleted",
		"events":  deleted,
	})
}

func (h *RoomHandler) purgeListCache() {
	if h.invalidator != nil {
		h.invalidator.PurgeEventLists(context.Background())
	}
}

func (h *RoomHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	log.Error("Unexpected error")
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}
