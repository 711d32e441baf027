// repository/review_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/dhouwanderer/wanderer-backend/models"
	"github.com/google/uuid"
)

// ReviewRepository handles review data operations. Reviews are insert-only.
type ReviewRepository struct {
	db *sql.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Insert creates a new review record, assigning it an ID
func (r *ReviewRepository) Insert(review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.NewString()
	}

	_, err := r.db.Exec(
		"INSERT INTO reviews (id, trip_name, name, rating, comment, date) VALUES ($1, $2, $3, $4, $5, $6)",
		review.ID, review.TripName, review.Name, review.Rating, review.Comment, review.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to insert review: %v", err)
	}
	return nil
}

// CountByTrip returns the number of reviews for a trip
func (r *ReviewRepository) CountByTrip(tripName string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM reviews WHERE trip_name = $1", tripName).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count reviews: %v", err)
	}
	return count, nil
}

// AverageRating returns the average rating for a trip, 0 when unreviewed
func (r *ReviewRepository) AverageRating(tripName string) (float64, error) {
	var avg float64
	err := r.db.QueryRow(
		"SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE trip_name = $1",
		tripName,
	).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("failed to average reviews: %v", err)
	}
	return avg, nil
}

// ListByTrip returns a page of reviews for a trip. orderBy must be one of the
// whitelisted sort clauses produced by services.ReviewSortClause.
func (r *ReviewRepository) ListByTrip(tripName, orderBy string, offset, limit int) ([]models.Review, error) {
	query := fmt.Sprintf(
		"SELECT id, trip_name, name, rating, comment, date FROM reviews WHERE trip_name = $1 ORDER BY %s OFFSET $2 LIMIT $3",
		orderBy,
	)
	rows, err := r.db.Query(query, tripName, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %v", err)
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var review models.Review
		if err := rows.Scan(&review.ID, &review.TripName, &review.Name, &review.Rating, &review.Comment, &review.Date); err != nil {
			return nil, fmt.Errorf("failed to scan review: %v", err)
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}
