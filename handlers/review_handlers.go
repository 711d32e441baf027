// handlers/review_handlers.go
package handlers

import (
	"github.com/dhouwanderer/wanderer-backend/models"
	"github.com/dhouwanderer/wanderer-backend/services"
	"github.com/dhouwanderer/wanderer-backend/utils"

	"github.com/gin-gonic/gin"
)

// ReviewHandler handles review submissions
type ReviewHandler struct {
	reviewService *services.ReviewService
	tripService   *services.TripService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService *services.ReviewService, tripService *services.TripService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, tripService: tripService}
}

// CreateReview handles POST /trips/:name/reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	trip, err := h.tripService.GetTripBySlug(c.Param("name"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	var request models.ReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	review, err := h.reviewService.AddReview(trip.Name, &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, review)
}
