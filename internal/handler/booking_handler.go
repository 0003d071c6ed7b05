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

type BookingHandler struct {
	service service.BookingService
}

func NewBookingHandler(service service.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	router := r.Group("/api")
	router.Use(auth)
	{
		router.GET("bookings", h.List)
		router.POST("bookings", h.Create)
		router.PUT("bookings/:id", h.Update)
		router.DELETE("bookings/:id", h.Cancel)
	}
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req model.CreateBookingRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	created, err := h.service.Create(c, middleware.UserID(c), req)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}

	var req model.UpdateBookingRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	updated, err := h.service.Update(c, id, middleware.UserID(c), req)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}

	if err := h.service.Cancel(c, id, middleware.UserID(c)); err != nil {
		h.handleError(c, err, "Cancel")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking cancelled",
	})
}

func (h *BookingHandler) List(c *gin.Context) {
	var page model.PageQuery
	if err := BindQuery(c, &page); err != nil {
		return
	}

	bookings, pagination, err := h.service.List(c, middleware.UserID(c), page)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings":   bookings,
		"pagination": pagination,
	})
}

func (h *BookingHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrInvalidSeatCount):
		log.Warn("Invalid seat count")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Seat count must be positive",
		})
	case errors.Is(err, apperrors.ErrAlreadyBooked):
		log.Warn("Already booked")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Event already booked",
		})
	case errors.Is(err, apperrors.ErrInsufficientSeats):
		log.Warn("Insufficient seats")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Not enough available seats",
		})
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Event not found",
		})
	case errors.Is(err, apperrors.ErrBookingNotFound):
		log.Warn("Booking not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
