// models/models.go
package models

import "time"

// Trip represents a sellable travel package
type Trip struct {
	ID        string         `json:"_id"`
	Name      string         `json:"name"`
	Price     string         `json:"price"` // free text; parsed at charge time, non-numeric means 0
	Image     string         `json:"image"`
	Spots     string         `json:"spots"`
	Itinerary []ItineraryDay `json:"itinerary,omitempty"`
}

// ItineraryDay represents one day entry of a trip itinerary
type ItineraryDay struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Booking represents a customer's request to purchase a trip, tracked
// through payment. Trip is a denormalized name, not a foreign key.
type Booking struct {
	ID            string    `json:"_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Trip          string    `json:"trip"`
	TravelDate    string    `json:"travel_date"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	OrderID       string    `json:"razorpay_order_id,omitempty"`
	CreatedAt     time.Time `json:"date"`
}

// Review represents a traveler review for a trip. Insert-only.
type Review struct {
	ID       string    `json:"_id"`
	TripName string    `json:"trip_name"`
	Name     string    `json:"name"`
	Rating   int       `json:"rating"`
	Comment  string    `json:"comment"`
	Date     time.Time `json:"date"`
}

// Checkout carries everything the payment page needs to open the
// gateway's checkout for an issued order.
type Checkout struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"` // minor units (paise)
	Price    int    `json:"price"`  // major units, for display
	Currency string `json:"currency"`
	KeyID    string `json:"keyId"`
	Trip     string `json:"trip"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// ReviewPage is one page of reviews for a trip plus its aggregates
type ReviewPage struct {
	Reviews     []Review `json:"reviews"`
	AvgRating   float64  `json:"avgRating"`
	ReviewCount int      `json:"reviewCount"`
	Page        int      `json:"page"`
	TotalPages  int      `json:"totalPages"`
	Sort        string   `json:"sort"`
}
