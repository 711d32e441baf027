// services/admin_service.go
package services

import (
	"errors"
	"log"
	"time"

	"github.com/dhouwanderer/wanderer-backend/models"
	"github.com/dhouwanderer/wanderer-backend/utils"
	"github.com/golang-jwt/jwt/v5"
)

// AdminService handles admin authentication. There is one shared password and
// no account model; a successful login yields a session token carrying a
// single is-admin claim.
type AdminService struct {
	password      string
	sessionSecret string
	adminEmail    string
	mailer        Mailer
}

// NewAdminService creates a new admin service
func NewAdminService(password, sessionSecret, adminEmail string, mailer Mailer) *AdminService {
	return &AdminService{
		password:      password,
		sessionSecret: sessionSecret,
		adminEmail:    adminEmail,
		mailer:        mailer,
	}
}

// Login compares the submitted password against the configured one and,
// on match, issues a signed HS256 session token with an admin claim.
func (s *AdminService) Login(password string) (string, error) {
	if s.password == "" || password != s.password {
		return "", utils.NewUnauthorizedError(utils.ErrInvalidPassword)
	}

	claims := jwt.MapClaims{
		"admin": true,
		"exp":   time.Now().Add(12 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.sessionSecret))
	if err != nil {
		return "", utils.NewInternalError("Failed to create session")
	}
	return signed, nil
}

// SendPasswordReminder emails the configured admin mailbox the shared
// password. Errors are surfaced so the caller can report them.
func (s *AdminService) SendPasswordReminder() error {
	if s.adminEmail == "" {
		return errors.New("admin email is not configured")
	}
	err := s.mailer.Send(s.adminEmail, "Admin Password Reminder",
		PasswordReminderBody(s.password), nil)
	if err != nil {
		log.Printf("Error sending password reminder: %v", err)
		return err
	}
	return nil
}

// ComputeRevenue totals the trip price for every Confirmed booking. Bookings
// reference trips by name; unknown trips and unparsable prices count as zero.
func ComputeRevenue(bookings []models.Booking, trips []models.Trip) int {
	prices := make(map[string]int, len(trips))
	for _, trip := range trips {
		prices[trip.Name] = utils.ParsePrice(trip.Price)
	}

	total := 0
	for _, booking := range bookings {
		if booking.Status == utils.StatusConfirmed {
			total += prices[booking.Trip]
		}
	}
	return total
}
