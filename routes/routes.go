package routes

import (
	"github.com/dhouwanderer/wanderer-backend/handlers"
	"github.com/dhouwanderer/wanderer-backend/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers bundles the handler set the router mounts
type Handlers struct {
	Trips    *handlers.TripHandler
	Bookings *handlers.BookingHandler
	Payments *handlers.PaymentHandler
	Reviews  *handlers.ReviewHandler
	Admin    *handlers.AdminHandler
}

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine, h *Handlers, sessionSecret string) {
	// Public site
	router.GET("/trips", h.Trips.ListTrips)
	router.GET("/trips/:name", h.Trips.GetTripDetail)
	router.POST("/trips/:name/reviews", h.Reviews.CreateReview)
	router.POST("/bookings", h.Bookings.CreateBooking)

	// Payment flow
	router.GET("/payment", h.Payments.Checkout)
	router.POST("/payment/verify", h.Payments.VerifyPayment)

	// Admin CMS
	router.POST("/admin/login", h.Admin.Login)
	router.POST("/admin/forgot-password", h.Admin.ForgotPassword)

	admin := router.Group("/admin")
	admin.Use(middleware.AdminRequired(sessionSecret))
	{
		admin.POST("/logout", h.Admin.Logout)
		admin.GET("/dashboard", h.Admin.Dashboard)
		admin.POST("/trips", h.Admin.AddTrip)
		admin.PUT("/trips/:id", h.Admin.EditTrip)
		admin.DELETE("/trips/:id", h.Admin.DeleteTrip)
		admin.POST("/bookings/:id/status", h.Admin.UpdateBookingStatus)
	}
}
