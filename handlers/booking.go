package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookeasy/models"
	"bookeasy/services/booking"
)

// BookingHandler exposes the slot-query and booking-creation endpoints.
type BookingHandler struct {
	BookingSvc booking.BookingService
	Logger     *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{BookingSvc: svc, Logger: logger}
}

// statusForError maps service error codes to HTTP statuses.
func statusForError(err error) int {
	switch booking.ErrorCode(err) {
	case booking.CodeValidation:
		return http.StatusBadRequest
	case booking.CodeNotFound:
		return http.StatusNotFound
	case booking.CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// GetAvailability handles POST /api/availability.
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	var req models.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request payload", "message": err.Error()})
		return
	}

	resp, err := h.BookingSvc.GetAvailability(c.Request.Context(), req)
	if err != nil {
		status := statusForError(err)
		if status == http.StatusInternalServerError {
			h.Logger.Error("GetAvailability: failed to compute availability", zap.Error(err))
			c.JSON(status, gin.H{"success": false, "error": "failed to fetch availability"})
			return
		}
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateBooking handles POST /api/book.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request payload", "message": err.Error()})
		return
	}

	confirmation, err := h.BookingSvc.CreateBooking(c.Request.Context(), input)
	if err != nil {
		status := statusForError(err)
		if status == http.StatusInternalServerError {
			h.Logger.Error("CreateBooking: failed to create booking", zap.Error(err))
			c.JSON(status, gin.H{"success": false, "error": "failed to create booking"})
			return
		}
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, confirmation)
}
