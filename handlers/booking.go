// File: handlers/booking.go
package handlers

import (
	"net/http"

	bookingSvc "slotify/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking state machine over HTTP.
type BookingHandler struct {
	Service bookingSvc.BookingService
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc bookingSvc.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler handles POST /api/bookings for clients.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	clientID, ok := contextUserID(c)
	if !ok {
		return
	}

	var req struct {
		SlotID      string `json:"slotId" binding:"required"`
		FinalCost   string `json:"finalCost"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	booking, err := h.Service.CreateBooking(c.Request.Context(), bookingSvc.CreateBookingInput{
		ClientID:    clientID,
		SlotID:      req.SlotID,
		FinalCost:   req.FinalCost,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// CancelBookingHandler handles PATCH /api/bookings/:id/cancel. Either
// participant may cancel.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}
	booking, err := h.Service.CancelBooking(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CompleteBookingHandler handles PATCH /api/bookings/:id/complete for the
// booked provider.
func (h *BookingHandler) CompleteBookingHandler(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}
	booking, err := h.Service.CompleteBooking(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	booking, err := h.Service.GetBookingByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// MyBookingsHandler handles GET /api/bookings/my, listing the caller's
// bookings newest first.
func (h *BookingHandler) MyBookingsHandler(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}
	bookings, err := h.Service.GetMyBookings(c.Request.Context(), userID, contextRole(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
