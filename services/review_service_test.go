package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/dhouwanderer/wanderer-backend/models"
	"github.com/dhouwanderer/wanderer-backend/utils"
	"github.com/stretchr/testify/assert"
)

type listCall struct {
	orderBy string
	offset  int
	limit   int
}

type fakeReviewStore struct {
	reviews   []models.Review
	listCalls []listCall
}

func (f *fakeReviewStore) Insert(review *models.Review) error {
	review.ID = fmt.Sprintf("rv-%d", len(f.reviews)+1)
	f.reviews = append(f.reviews, *review)
	return nil
}

func (f *fakeReviewStore) CountByTrip(tripName string) (int, error) {
	count := 0
	for _, r := range f.reviews {
		if r.TripName == tripName {
			count++
		}
	}
	return count, nil
}

func (f *fakeReviewStore) AverageRating(tripName string) (float64, error) {
	sum, count := 0, 0
	for _, r := range f.reviews {
		if r.TripName == tripName {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return float64(sum) / float64(count), nil
}

func (f *fakeReviewStore) ListByTrip(tripName, orderBy string, offset, limit int) ([]models.Review, error) {
	f.listCalls = append(f.listCalls, listCall{orderBy: orderBy, offset: offset, limit: limit})

	var matched []models.Review
	for _, r := range f.reviews {
		if r.TripName == tripName {
			matched = append(matched, r)
		}
	}
	if offset >= len(matched) {
		return nil, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func seedReviews(store *fakeReviewStore, tripName string, ratings ...int) {
	for i, rating := range ratings {
		store.reviews = append(store.reviews, models.Review{
			ID:       fmt.Sprintf("rv-%d", i+1),
			TripName: tripName,
			Name:     fmt.Sprintf("Guest %d", i+1),
			Rating:   rating,
			Date:     time.Now().Add(time.Duration(i) * time.Hour),
		})
	}
}

func TestReviewSortClause(t *testing.T) {
	assert.Equal(t, "date DESC", ReviewSortClause(utils.SortNewest))
	assert.Equal(t, "date ASC", ReviewSortClause(utils.SortOldest))
	assert.Equal(t, "rating DESC", ReviewSortClause(utils.SortHighest))
	assert.Equal(t, "rating ASC", ReviewSortClause(utils.SortLowest))
	// Anything unrecognised falls back to newest-first
	assert.Equal(t, "date DESC", ReviewSortClause("name; DROP TABLE reviews"))
	assert.Equal(t, "date DESC", ReviewSortClause(""))
}

func TestAddReview_StampsTripAndDate(t *testing.T) {
	store := &fakeReviewStore{}
	service := NewReviewService(store)

	review, err := service.AddReview("Goa Getaway", &models.ReviewRequest{
		Name:    "Asha",
		Rating:  5,
		Comment: "Loved it",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Goa Getaway", review.TripName)
	assert.False(t, review.Date.IsZero())
	assert.Len(t, store.reviews, 1)
}

func TestTripReviews_NoReviews(t *testing.T) {
	service := NewReviewService(&fakeReviewStore{})

	page, err := service.TripReviews("Goa Getaway", 1, utils.SortNewest)

	assert.NoError(t, err)
	assert.Equal(t, 0, page.ReviewCount)
	assert.Equal(t, float64(0), page.AvgRating)
	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Reviews)
}

func TestTripReviews_PaginatesAtFivePerPage(t *testing.T) {
	store := &fakeReviewStore{}
	seedReviews(store, "Goa Getaway", 5, 4, 3, 5, 2, 4, 5, 1, 3, 4, 5, 2)
	service := NewReviewService(store)

	page, err := service.TripReviews("Goa Getaway", 3, utils.SortNewest)

	assert.NoError(t, err)
	assert.Equal(t, 12, page.ReviewCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Reviews, 2)

	call := store.listCalls[0]
	assert.Equal(t, 10, call.offset)
	assert.Equal(t, 5, call.limit)
}

func TestTripReviews_AverageRoundsToOneDecimal(t *testing.T) {
	store := &fakeReviewStore{}
	seedReviews(store, "Goa Getaway", 5, 4, 4) // 4.333...
	service := NewReviewService(store)

	page, err := service.TripReviews("Goa Getaway", 1, utils.SortNewest)

	assert.NoError(t, err)
	assert.Equal(t, 4.3, page.AvgRating)
}

func TestTripReviews_PageBelowOneClampsToFirst(t *testing.T) {
	store := &fakeReviewStore{}
	seedReviews(store, "Goa Getaway", 5, 4)
	service := NewReviewService(store)

	page, err := service.TripReviews("Goa Getaway", 0, utils.SortNewest)

	assert.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 0, store.listCalls[0].offset)
}

func TestTripReviews_PassesWhitelistedSortToStore(t *testing.T) {
	store := &fakeReviewStore{}
	seedReviews(store, "Goa Getaway", 5)
	service := NewReviewService(store)

	_, err := service.TripReviews("Goa Getaway", 1, utils.SortLowest)

	assert.NoError(t, err)
	assert.Equal(t, "rating ASC", store.listCalls[0].orderBy)
}
