// services/booking_service.go
package services

import (
	"log"
	"strings"
	"time"

	"github.com/dhouwanderer/wanderer-backend/models"
	"github.com/dhouwanderer/wanderer-backend/utils"
)

// BookingStore is the persistence surface the booking lifecycle needs
type BookingStore interface {
	Insert(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	GetByOrderID(orderID string) (*models.Booking, error)
	SetOrderID(id, orderID string) error
	SetPaymentOutcome(id, paymentStatus, status string) error
	SetStatus(id, status string) error
	ListAll() ([]models.Booking, error)
}

// BookingService handles booking submissions and the admin status override
type BookingService struct {
	bookings BookingStore
	mailer   Mailer
}

// NewBookingService creates a new booking service
func NewBookingService(bookings BookingStore, mailer Mailer) *BookingService {
	return &BookingService{bookings: bookings, mailer: mailer}
}

// SubmitBooking persists a new booking in Pending/Unpaid state. Form fields
// are accepted as-is; blank name and destination get placeholder values.
// The acknowledgement email is best-effort: a send failure is logged and the
// booking stands.
func (s *BookingService) SubmitBooking(req *models.BookingRequest) (*models.Booking, error) {
	name := strings.TrimSpace(req.FullName)
	if name == "" {
		name = "Traveler"
	}
	destination := strings.TrimSpace(req.Destination)
	if destination == "" {
		destination = "Expedition"
	}

	booking := &models.Booking{
		Name:          name,
		Email:         strings.TrimSpace(req.Email),
		Trip:          destination,
		TravelDate:    req.TravelDate,
		Status:        utils.StatusPending,
		PaymentStatus: utils.PaymentUnpaid,
		CreatedAt:     time.Now(),
	}

	if err := s.bookings.Insert(booking); err != nil {
		log.Printf("Error storing booking: %v", err)
		return nil, utils.NewInternalError("An error occurred while processing your booking. Please try again.")
	}

	// Best-effort acknowledgement; the booking is already committed.
	if err := s.mailer.Send(booking.Email, "Booking Received: "+booking.Trip,
		BookingReceivedBody(booking.Name, booking.Trip), nil); err != nil {
		log.Printf("Warning: Email sending failed: %v", err)
	}

	return booking, nil
}

// GetBooking returns a booking by ID
func (s *BookingService) GetBooking(id string) (*models.Booking, error) {
	booking, err := s.bookings.GetByID(id)
	if err != nil {
		return nil, utils.NewNotFoundError("Booking")
	}
	return booking, nil
}

// SetStatus is the admin override: it overwrites the status string
// unconditionally and never touches payment_status. Any string is accepted.
func (s *BookingService) SetStatus(bookingID, status string) error {
	if _, err := s.bookings.GetByID(bookingID); err != nil {
		return utils.NewNotFoundError("Booking")
	}
	if err := s.bookings.SetStatus(bookingID, status); err != nil {
		return utils.NewInternalError(utils.ErrFailedToStore)
	}
	return nil
}

// ListBookings returns all bookings, newest first
func (s *BookingService) ListBookings() ([]models.Booking, error) {
	bookings, err := s.bookings.ListAll()
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	return bookings, nil
}
