package models

// BookingRequest is the booking form submission. Fields are accepted as-is;
// a missing email only means the confirmation mail cannot be delivered.
type BookingRequest struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Destination string `json:"destination"`
	TravelDate  string `json:"travel_date"`
}

// ReviewRequest request model
type ReviewRequest struct {
	Name    string `json:"name" binding:"required"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// AdminLoginRequest request model
type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// StatusUpdateRequest request model for the admin status override
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateBookingResponse response model
type CreateBookingResponse struct {
	BookingID string `json:"bookingId"`
}

// TripDetailResponse is the trip page payload: the trip plus its reviews
type TripDetailResponse struct {
	Trip    *Trip      `json:"trip"`
	Reviews ReviewPage `json:"reviews"`
}

// DashboardResponse is the admin dashboard payload
type DashboardResponse struct {
	Bookings []Booking `json:"bookings"`
	Trips    []Trip    `json:"trips"`
	Revenue  int       `json:"revenue"`
}
