// handlers/booking_handlers.go
package handlers

import (
	"github.com/dhouwanderer/wanderer-backend/models"
	"github.com/dhouwanderer/wanderer-backend/services"
	"github.com/dhouwanderer/wanderer-backend/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler handles booking submissions
type BookingHandler struct {
	bookingService *services.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CreateBooking handles POST /bookings. The form is accepted as-is; the
// returned booking id is what the payment page needs to issue an order.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var request models.BookingRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	booking, err := h.bookingService.SubmitBooking(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.CreateBookingResponse{BookingID: booking.ID})
}
