// handlers/trip_handlers.go
package handlers

import (
	"strconv"

	"github.com/dhouwanderer/wanderer-backend/models"
	"github.com/dhouwanderer/wanderer-backend/services"
	"github.com/dhouwanderer/wanderer-backend/utils"

	"github.com/gin-gonic/gin"
)

// TripHandler handles public trip browsing
type TripHandler struct {
	tripService   *services.TripService
	reviewService *services.ReviewService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(tripService *services.TripService, reviewService *services.ReviewService) *TripHandler {
	return &TripHandler{tripService: tripService, reviewService: reviewService}
}

// ListTrips handles GET /trips with an optional ?q= name search
func (h *TripHandler) ListTrips(c *gin.Context) {
	query := c.Query("q")

	trips, err := h.tripService.SearchTrips(query)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{
		"trips":       trips,
		"searchQuery": query,
	})
}

// GetTripDetail handles GET /trips/:name — the trip plus one page of reviews
func (h *TripHandler) GetTripDetail(c *gin.Context) {
	trip, err := h.tripService.GetTripBySlug(c.Param("name"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	sort := c.DefaultQuery("sort", utils.SortNewest)

	reviews, err := h.reviewService.TripReviews(trip.Name, page, sort)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.TripDetailResponse{
		Trip:    trip,
		Reviews: *reviews,
	})
}
