// services/review_service.go
package services

import (
	"time"

	"github.com/dhouwanderer/wanderer-backend/models"
	"github.com/dhouwanderer/wanderer-backend/utils"
)

// ReviewStore is the persistence surface for reviews
type ReviewStore interface {
	Insert(review *models.Review) error
	CountByTrip(tripName string) (int, error)
	AverageRating(tripName string) (float64, error)
	ListByTrip(tripName, orderBy string, offset, limit int) ([]models.Review, error)
}

// ReviewService handles review submission and the paginated, aggregated
// review listing on the trip page
type ReviewService struct {
	reviews ReviewStore
}

// NewReviewService creates a new review service
func NewReviewService(reviews ReviewStore) *ReviewService {
	return &ReviewService{reviews: reviews}
}

// ReviewSortClause maps a sort option to a whitelisted ORDER BY clause.
// Unknown options fall back to newest-first.
func ReviewSortClause(option string) string {
	switch option {
	case utils.SortOldest:
		return "date ASC"
	case utils.SortHighest:
		return "rating DESC"
	case utils.SortLowest:
		return "rating ASC"
	default:
		return "date DESC"
	}
}

// AddReview stores a new review for a trip. Reviews are never updated or
// deleted; the rating value is stored as submitted.
func (s *ReviewService) AddReview(tripName string, req *models.ReviewRequest) (*models.Review, error) {
	review := &models.Review{
		TripName: tripName,
		Name:     req.Name,
		Rating:   req.Rating,
		Comment:  req.Comment,
		Date:     time.Now(),
	}
	if err := s.reviews.Insert(review); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return review, nil
}

// TripReviews returns one page of reviews with count and average rating.
// Pages are 1-based; out-of-range pages return an empty list.
func (s *ReviewService) TripReviews(tripName string, page int, sort string) (*models.ReviewPage, error) {
	if page < 1 {
		page = 1
	}

	result := &models.ReviewPage{
		Page:       page,
		TotalPages: 1,
		Sort:       sort,
	}

	count, err := s.reviews.CountByTrip(tripName)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	result.ReviewCount = count
	if count == 0 {
		return result, nil
	}

	avg, err := s.reviews.AverageRating(tripName)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	result.AvgRating = utils.Round1(avg)
	result.TotalPages = (count + utils.ReviewsPerPage - 1) / utils.ReviewsPerPage

	reviews, err := s.reviews.ListByTrip(tripName, ReviewSortClause(sort),
		(page-1)*utils.ReviewsPerPage, utils.ReviewsPerPage)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	result.Reviews = reviews

	return result, nil
}
