// services/payment_service.go
package services

import (
	"log"
	"time"

	"github.com/dhouwanderer/wanderer-backend/models"
	"github.com/dhouwanderer/wanderer-backend/utils"
)

// PaymentGateway is the external payment processor contract
type PaymentGateway interface {
	CreateOrder(amount int64, currency, receipt string, notes map[string]string) (string, error)
	VerifySignature(orderID, paymentID, signature string) bool
	KeyID() string
}

// InvoiceBuilder renders the invoice document attached to receipt emails
type InvoiceBuilder interface {
	Build(booking *models.Booking, price int, paymentID string, date time.Time) ([]byte, string, error)
}

// PaymentService orchestrates the payment half of the booking lifecycle:
// issuing a gateway order for a booking and applying the verified outcome.
type PaymentService struct {
	bookings BookingStore
	trips    TripStore
	gateway  PaymentGateway
	mailer   Mailer
	invoices InvoiceBuilder
}

// NewPaymentService creates a new payment service
func NewPaymentService(bookings BookingStore, trips TripStore, gateway PaymentGateway, mailer Mailer, invoices InvoiceBuilder) *PaymentService {
	return &PaymentService{
		bookings: bookings,
		trips:    trips,
		gateway:  gateway,
		mailer:   mailer,
		invoices: invoices,
	}
}

// tripPrice resolves the price to charge for a booking's trip. A missing trip
// or an unparsable price charges zero; that is policy, not an error.
func (s *PaymentService) tripPrice(tripName string) int {
	trip, err := s.trips.GetByName(tripName)
	if err != nil {
		return 0
	}
	return utils.ParsePrice(trip.Price)
}

// IssueOrder creates a gateway order for a booking and stores the returned
// order id on it. Order creation failure is a hard error: the booking keeps
// its current state and the caller sees the failure.
func (s *PaymentService) IssueOrder(bookingID string) (*models.Checkout, error) {
	booking, err := s.bookings.GetByID(bookingID)
	if err != nil {
		return nil, utils.NewNotFoundError("Booking")
	}

	price := s.tripPrice(booking.Trip)
	amount := int64(price) * 100

	orderID, err := s.gateway.CreateOrder(amount, utils.CurrencyINR, booking.ID, map[string]string{
		"trip":  booking.Trip,
		"email": booking.Email,
	})
	if err != nil {
		log.Printf("Error creating payment order for booking %s: %v", booking.ID, err)
		return nil, utils.NewInternalError(utils.ErrOrderCreateFailed)
	}

	if err := s.bookings.SetOrderID(booking.ID, orderID); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}

	return &models.Checkout{
		OrderID:  orderID,
		Amount:   amount,
		Price:    price,
		Currency: utils.CurrencyINR,
		KeyID:    s.gateway.KeyID(),
		Trip:     booking.Trip,
		Name:     booking.Name,
		Email:    booking.Email,
	}, nil
}

// VerifyPayment applies a payment callback. Signature verification is the
// sole trust boundary: on failure nothing is mutated and the caller gets an
// explicit rejection. On success the booking carrying the order id becomes
// Paid/Confirmed and a receipt email with the invoice goes out best-effort.
// A valid callback with no matching booking is a logged no-op, not an error:
// the payment itself succeeded at the gateway.
func (s *PaymentService) VerifyPayment(orderID, paymentID, signature string) error {
	if !s.gateway.VerifySignature(orderID, paymentID, signature) {
		return utils.NewBadRequestError(utils.ErrVerifyFailed)
	}

	booking, err := s.bookings.GetByOrderID(orderID)
	if err != nil {
		log.Printf("Error: Booking not found for Order ID %s", orderID)
		return nil
	}

	// Unconditional update: replaying a valid callback converges to the same
	// state but resends the receipt email (at-least-once delivery).
	if err := s.bookings.SetPaymentOutcome(booking.ID, utils.PaymentPaid, utils.StatusConfirmed); err != nil {
		return utils.NewInternalError(utils.ErrFailedToStore)
	}
	log.Printf("Payment verified. Updating booking %s to Paid/Confirmed.", booking.ID)

	s.sendReceipt(booking, paymentID)
	return nil
}

// sendReceipt emails the receipt with the generated invoice attached. The
// state transition has already committed; failures here are logged only.
func (s *PaymentService) sendReceipt(booking *models.Booking, paymentID string) {
	now := time.Now()
	price := s.tripPrice(booking.Trip)

	var attachment *Attachment
	data, filename, err := s.invoices.Build(booking, price, paymentID, now)
	if err != nil {
		log.Printf("Error generating invoice for booking %s: %v", booking.ID, err)
	} else {
		attachment = &Attachment{Name: filename, MimeType: InvoiceMimeType, Data: data}
	}

	if err := s.mailer.Send(booking.Email, "Payment Receipt: "+booking.Trip,
		PaymentReceiptBody(booking.Name, booking.Trip, paymentID, now), attachment); err != nil {
		log.Printf("Error sending receipt email: %v", err)
	}
}
