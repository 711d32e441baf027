package utils

const (
	// Booking statuses written by the booking flow itself. The status column
	// is an open string: the admin override may store any value, these are
	// just the ones the code sets.
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCancelled = "Cancelled"

	// Payment statuses
	PaymentUnpaid = "Unpaid"
	PaymentPaid   = "Paid"

	// Payment order currency
	CurrencyINR = "INR"

	// Fallback image for trips created without an upload
	PlaceholderImage = "https://via.placeholder.com/400x300?text=No+Image"

	// Review pagination
	ReviewsPerPage = 5

	// Review sort options
	SortNewest  = "newest"
	SortOldest  = "oldest"
	SortHighest = "highest"
	SortLowest  = "lowest"

	// HTTP status messages
	ErrInvalidRequest    = "Invalid request"
	ErrTripNotFound      = "Trip not found"
	ErrBookingNotFound   = "Booking not found"
	ErrFailedToStore     = "Failed to store data"
	ErrFailedToRetrieve  = "Failed to retrieve data"
	ErrOrderCreateFailed = "Error creating payment order"
	ErrVerifyFailed      = "Payment Verification Failed"
	ErrInvalidPassword   = "Invalid Admin Password"
)
