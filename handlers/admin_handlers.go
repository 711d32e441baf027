// handlers/admin_handlers.go
package handlers

import (
	"fmt"
	"log"
	"mime/multipart"

	"github.com/dhouwanderer/wanderer-backend/middleware"
	"github.com/dhouwanderer/wanderer-backend/models"
	"github.com/dhouwanderer/wanderer-backend/services"
	"github.com/dhouwanderer/wanderer-backend/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles the admin CMS: login, dashboard, trip management and
// the booking status override
type AdminHandler struct {
	adminService   *services.AdminService
	tripService    *services.TripService
	bookingService *services.BookingService
	uploadService  *services.UploadService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *services.AdminService, tripService *services.TripService,
	bookingService *services.BookingService, uploadService *services.UploadService) *AdminHandler {
	return &AdminHandler{
		adminService:   adminService,
		tripService:    tripService,
		bookingService: bookingService,
		uploadService:  uploadService,
	}
}

// Login handles POST /admin/login — shared password in, session cookie out
func (h *AdminHandler) Login(c *gin.Context) {
	var request models.AdminLoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	token, err := h.adminService.Login(request.Password)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.SetCookie(middleware.AdminCookieName, token, 12*3600, "/", "", false, true)
	utils.HandleSuccess(c, gin.H{"loggedIn": true})
}

// Logout handles POST /admin/logout — clears the session cookie
func (h *AdminHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.AdminCookieName, "", -1, "/", "", false, true)
	utils.HandleSuccess(c, gin.H{"loggedIn": false})
}

// ForgotPassword handles POST /admin/forgot-password — mails the configured
// admin mailbox a password reminder
func (h *AdminHandler) ForgotPassword(c *gin.Context) {
	if err := h.adminService.SendPasswordReminder(); err != nil {
		utils.HandleError(c, utils.NewInternalError("Error sending email. Please check server logs."))
		return
	}
	utils.HandleSuccess(c, gin.H{"message": "Password reminder sent"})
}

// Dashboard handles GET /admin/dashboard — all bookings newest first, all
// trips, and total revenue over Confirmed bookings
func (h *AdminHandler) Dashboard(c *gin.Context) {
	bookings, err := h.bookingService.ListBookings()
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	trips, err := h.tripService.ListTrips()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.DashboardResponse{
		Bookings: bookings,
		Trips:    trips,
		Revenue:  services.ComputeRevenue(bookings, trips),
	})
}

// AddTrip handles POST /admin/trips (multipart). The image upload is
// optional; without one the trip gets a placeholder image URL.
func (h *AdminHandler) AddTrip(c *gin.Context) {
	trip := &models.Trip{
		Name:  c.PostForm("name"),
		Price: c.PostForm("price"),
		Spots: c.PostForm("spots"),
	}

	if file, err := c.FormFile("image_file"); err == nil {
		url, err := h.uploadImage(c, file)
		if err != nil {
			utils.HandleError(c, err)
			return
		}
		trip.Image = url
	}

	if err := h.tripService.CreateTrip(trip); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, trip)
}

// EditTrip handles PUT /admin/trips/:id (multipart): trip fields, an optional
// replacement image, and the full itinerary in submitted order.
func (h *AdminHandler) EditTrip(c *gin.Context) {
	trip, err := h.tripService.GetTrip(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	trip.Name = c.PostForm("name")
	trip.Price = c.PostForm("price")
	trip.Spots = c.PostForm("spots")

	if file, err := c.FormFile("image_file"); err == nil {
		url, err := h.uploadImage(c, file)
		if err != nil {
			utils.HandleError(c, err)
			return
		}
		trip.Image = url
	}

	// Itinerary: the form posts a list of day indices plus per-day fields.
	var days []services.ItineraryDayForm
	for _, index := range c.PostFormArray("day_indices") {
		day := services.ItineraryDayForm{
			Title:         c.PostForm(fmt.Sprintf("day_title_%s", index)),
			Description:   c.PostForm(fmt.Sprintf("day_desc_%s", index)),
			ExistingImage: c.PostForm(fmt.Sprintf("existing_day_img_%s", index)),
		}
		if file, err := c.FormFile(fmt.Sprintf("day_image_%s", index)); err == nil {
			url, err := h.uploadImage(c, file)
			if err != nil {
				utils.HandleError(c, err)
				return
			}
			day.UploadedImage = url
		}
		days = append(days, day)
	}
	trip.Itinerary = services.BuildItinerary(days)

	if err := h.tripService.UpdateTrip(trip); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, trip)
}

// DeleteTrip handles DELETE /admin/trips/:id
func (h *AdminHandler) DeleteTrip(c *gin.Context) {
	if err := h.tripService.DeleteTrip(c.Param("id")); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, true)
}

// UpdateBookingStatus handles POST /admin/bookings/:id/status — the manual
// status override, independent of payment status
func (h *AdminHandler) UpdateBookingStatus(c *gin.Context) {
	var request models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := h.bookingService.SetStatus(c.Param("id"), request.Status); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, true)
}

// uploadImage validates and pushes one uploaded file to the image host
func (h *AdminHandler) uploadImage(c *gin.Context, header *multipart.FileHeader) (string, error) {
	if !utils.AllowedUploadFile(header.Filename) {
		return "", utils.NewBadRequestError("Only PNG, JPG, JPEG, GIF and MP4 files are supported")
	}

	file, err := header.Open()
	if err != nil {
		return "", utils.NewInternalError("Failed to read uploaded file")
	}
	defer file.Close()

	log.Printf("Uploading image: %s, Size: %d, Content-Type: %s",
		header.Filename, header.Size, header.Header.Get("Content-Type"))

	url, err := h.uploadService.UploadImage(file, header.Filename)
	if err != nil {
		log.Printf("Error uploading image: %v", err)
		return "", utils.NewInternalError("Error uploading image")
	}
	return url, nil
}
