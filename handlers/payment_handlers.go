// handlers/payment_handlers.go
package handlers

import (
	"github.com/dhouwanderer/wanderer-backend/services"
	"github.com/dhouwanderer/wanderer-backend/utils"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles the payment half of the booking flow
type PaymentHandler struct {
	paymentService *services.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Checkout handles GET /payment?booking_id= — issues a gateway order for the
// booking and returns everything the checkout page needs.
func (h *PaymentHandler) Checkout(c *gin.Context) {
	bookingID := c.Query("booking_id")
	if bookingID == "" {
		utils.HandleError(c, utils.NewBadRequestError("booking_id is required"))
		return
	}

	checkout, err := h.paymentService.IssueOrder(bookingID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, checkout)
}

// VerifyPayment handles the gateway's POST /payment/verify callback. The
// fields arrive as form values, as the gateway's checkout posts them.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	orderID := c.PostForm("razorpay_order_id")
	paymentID := c.PostForm("razorpay_payment_id")
	signature := c.PostForm("razorpay_signature")

	if err := h.paymentService.VerifyPayment(orderID, paymentID, signature); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"status": "verified"})
}
