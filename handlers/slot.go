// File: handlers/slot.go
package handlers

import (
	"net/http"
	"time"

	slotSvc "slotify/services/slot"

	"github.com/gin-gonic/gin"
)

// SlotHandler exposes slot lifecycle endpoints.
type SlotHandler struct {
	Service slotSvc.SlotService
}

// NewSlotHandler creates a new SlotHandler instance.
func NewSlotHandler(svc slotSvc.SlotService) *SlotHandler {
	return &SlotHandler{Service: svc}
}

// CreateSlotHandler handles POST /api/slots for providers.
func (h *SlotHandler) CreateSlotHandler(c *gin.Context) {
	providerID, ok := contextUserID(c)
	if !ok {
		return
	}

	var req struct {
		StartTime time.Time `json:"startTime" binding:"required"`
		EndTime   time.Time `json:"endTime" binding:"required"`
		Duration  int       `json:"duration" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	slot, err := h.Service.CreateSlot(c.Request.Context(), slotSvc.CreateSlotInput{
		ProviderID: providerID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Duration:   req.Duration,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, slot)
}

// ListProviderSlotsHandler handles GET /api/slots/provider/:id?status=...,
// defaulting to available slots.
func (h *SlotHandler) ListProviderSlotsHandler(c *gin.Context) {
	slots, err := h.Service.ListSlots(c.Request.Context(), c.Param("id"), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// ListOwnSlotsHandler handles GET /api/slots/my for the calling provider,
// including booking summaries per slot.
func (h *SlotHandler) ListOwnSlotsHandler(c *gin.Context) {
	providerID, ok := contextUserID(c)
	if !ok {
		return
	}
	slots, err := h.Service.ListOwnSlots(c.Request.Context(), providerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// DeleteSlotHandler handles DELETE /api/slots/:id.
func (h *SlotHandler) DeleteSlotHandler(c *gin.Context) {
	providerID, ok := contextUserID(c)
	if !ok {
		return
	}
	if err := h.Service.DeleteSlot(c.Request.Context(), providerID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Slot deleted"})
}
