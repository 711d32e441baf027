// repository/booking_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/dhouwanderer/wanderer-backend/models"
	"github.com/google/uuid"
)

// BookingRepository handles booking data operations
type BookingRepository struct {
	db *sql.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingColumns = "id, name, email, trip, travel_date, status, payment_status, razorpay_order_id, created_at"

// Insert creates a new booking record, assigning it an ID
func (r *BookingRepository) Insert(booking *models.Booking) error {
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}

	_, err := r.db.Exec(
		`INSERT INTO bookings (id, name, email, trip, travel_date, status, payment_status, razorpay_order_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		booking.ID, booking.Name, booking.Email, booking.Trip, booking.TravelDate,
		booking.Status, booking.PaymentStatus, booking.OrderID, booking.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %v", err)
	}
	return nil
}

// GetByID retrieves a booking by its ID
func (r *BookingRepository) GetByID(id string) (*models.Booking, error) {
	return r.getOne("SELECT "+bookingColumns+" FROM bookings WHERE id = $1", id)
}

// GetByOrderID retrieves the booking carrying a payment order identifier.
// Lookup is by the stored order id, never by a caller-supplied booking id.
func (r *BookingRepository) GetByOrderID(orderID string) (*models.Booking, error) {
	if orderID == "" {
		return nil, fmt.Errorf("booking not found")
	}
	return r.getOne("SELECT "+bookingColumns+" FROM bookings WHERE razorpay_order_id = $1", orderID)
}

func (r *BookingRepository) getOne(query string, arg string) (*models.Booking, error) {
	var b models.Booking
	err := r.db.QueryRow(query, arg).Scan(
		&b.ID, &b.Name, &b.Email, &b.Trip, &b.TravelDate,
		&b.Status, &b.PaymentStatus, &b.OrderID, &b.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("booking not found")
		}
		return nil, fmt.Errorf("failed to get booking: %v", err)
	}
	return &b, nil
}

// SetOrderID stores the gateway order identifier on a booking
func (r *BookingRepository) SetOrderID(id, orderID string) error {
	_, err := r.db.Exec("UPDATE bookings SET razorpay_order_id = $1 WHERE id = $2", orderID, id)
	if err != nil {
		return fmt.Errorf("failed to set order id: %v", err)
	}
	return nil
}

// SetPaymentOutcome updates payment_status and status together in a single
// atomic statement; this is the only writer that touches both fields.
func (r *BookingRepository) SetPaymentOutcome(id, paymentStatus, status string) error {
	_, err := r.db.Exec(
		"UPDATE bookings SET payment_status = $1, status = $2 WHERE id = $3",
		paymentStatus, status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment outcome: %v", err)
	}
	return nil
}

// SetStatus overwrites the booking status string only; payment_status is
// deliberately left untouched (admin override path).
func (r *BookingRepository) SetStatus(id, status string) error {
	_, err := r.db.Exec("UPDATE bookings SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return fmt.Errorf("failed to update status: %v", err)
	}
	return nil
}

// ListAll returns every booking, newest first
func (r *BookingRepository) ListAll() ([]models.Booking, error) {
	rows, err := r.db.Query("SELECT " + bookingColumns + " FROM bookings ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %v", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		err := rows.Scan(
			&b.ID, &b.Name, &b.Email, &b.Trip, &b.TravelDate,
			&b.Status, &b.PaymentStatus, &b.OrderID, &b.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %v", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}
