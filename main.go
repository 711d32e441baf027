// main.go
package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/dhouwanderer/wanderer-backend/handlers"
	"github.com/dhouwanderer/wanderer-backend/repository"
	"github.com/dhouwanderer/wanderer-backend/routes"
	"github.com/dhouwanderer/wanderer-backend/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Initialize New Relic
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName("Wanderer Travels API"),
		newrelic.ConfigLicense(os.Getenv("NEW_RELIC_LICENSE_KEY")),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize New Relic: %v", err)
	}

	// Initialize database
	if err := repository.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer repository.CloseDB()
	db := repository.GetDB()

	// Repositories
	tripRepo := repository.NewTripRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// External collaborators. Missing credentials degrade the feature, they
	// do not stop the server.
	mailPort, err := strconv.Atoi(getEnvOrDefault("MAIL_PORT", "587"))
	if err != nil {
		mailPort = 587
	}
	mailer := services.NewSMTPMailer(
		getEnvOrDefault("MAIL_SERVER", "smtp.gmail.com"),
		mailPort,
		os.Getenv("MAIL_USERNAME"),
		os.Getenv("MAIL_PASS"),
		"Wanderer Travels",
	)
	if !mailer.Configured() {
		log.Println("Warning: mail credentials missing, email sending is disabled")
	}

	gateway := services.NewRazorpayClient(
		os.Getenv("RAZORPAY_KEY_ID"),
		os.Getenv("RAZORPAY_KEY_SECRET"),
	)
	if !gateway.Configured() {
		log.Println("Warning: Razorpay credentials missing, payments are disabled")
	}

	uploads := services.NewUploadService(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if !uploads.Configured() {
		log.Println("Warning: Cloudinary credentials missing, image uploads are disabled")
	}

	invoices := services.NewInvoiceService(getEnvOrDefault("INVOICE_LOGO_PATH", "assets/logo.png"))

	// Services
	tripService := services.NewTripService(tripRepo)
	reviewService := services.NewReviewService(reviewRepo)
	bookingService := services.NewBookingService(bookingRepo, mailer)
	paymentService := services.NewPaymentService(bookingRepo, tripRepo, gateway, mailer, invoices)
	sessionSecret := getEnvOrDefault("SECRET_KEY", "dev-secret")
	adminService := services.NewAdminService(
		os.Getenv("ADMIN_PASSWORD"),
		sessionSecret,
		os.Getenv("MAIL_USERNAME"),
		mailer,
	)

	// Set up Gin router
	router := gin.Default()

	// Add New Relic middleware
	if app != nil {
		router.Use(nrgin.Middleware(app))
	}

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Change to your frontend URL in production
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Set up routes
	h := &routes.Handlers{
		Trips:    handlers.NewTripHandler(tripService, reviewService),
		Bookings: handlers.NewBookingHandler(bookingService),
		Payments: handlers.NewPaymentHandler(paymentService),
		Reviews:  handlers.NewReviewHandler(reviewService, tripService),
		Admin:    handlers.NewAdminHandler(adminService, tripService, bookingService, uploads),
	}
	routes.SetupRoutes(router, h, sessionSecret)

	// Health-check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	log.Printf("Server starting on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
