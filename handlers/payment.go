// File: handlers/payment.go
package handlers

import (
	"net/http"

	paymentSvc "slotify/services/payment"

	"github.com/gin-gonic/gin"
)

// PaymentHandler exposes the payment order and verification endpoints.
type PaymentHandler struct {
	Service paymentSvc.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler instance.
func NewPaymentHandler(svc paymentSvc.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

// CreateOrderHandler handles POST /api/payments/order for the booking's
// client.
func (h *PaymentHandler) CreateOrderHandler(c *gin.Context) {
	clientID, ok := contextUserID(c)
	if !ok {
		return
	}

	var req struct {
		BookingID string  `json:"bookingId" binding:"required"`
		Amount    float64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	order, err := h.Service.CreateOrder(c.Request.Context(), clientID, req.BookingID, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// ValidatePaymentHandler handles POST /api/payments/validate. On a valid
// signature the payment record is finalised and the booking completed.
func (h *PaymentHandler) ValidatePaymentHandler(c *gin.Context) {
	var req struct {
		OrderID   string `json:"razorpay_order_id" binding:"required"`
		PaymentID string `json:"razorpay_payment_id" binding:"required"`
		Signature string `json:"razorpay_signature" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	record, err := h.Service.ValidatePayment(c.Request.Context(), req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment verified", "payment": record})
}
