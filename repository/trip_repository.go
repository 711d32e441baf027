// repository/trip_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/dhouwanderer/wanderer-backend/models"
	"github.com/google/uuid"
)

// TripRepository handles database operations for trips
type TripRepository struct {
	db *sql.DB
}

// NewTripRepository creates a new TripRepository
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{db: db}
}

// Store saves a trip and its itinerary days in one transaction.
// Assigns the trip an ID if it has none.
func (r *TripRepository) Store(trip *models.Trip) error {
	if trip.ID == "" {
		trip.ID = uuid.NewString()
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO trips (id, name, price, image, spots) VALUES ($1, $2, $3, $4, $5)",
		trip.ID, trip.Name, trip.Price, trip.Image, trip.Spots,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %v", err)
	}

	if err := insertItinerary(tx, trip.ID, trip.Itinerary); err != nil {
		return err
	}

	return tx.Commit()
}

// Update overwrites a trip's fields and replaces its itinerary with the
// submitted one, preserving submitted order.
func (r *TripRepository) Update(trip *models.Trip) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"UPDATE trips SET name = $1, price = $2, image = $3, spots = $4 WHERE id = $5",
		trip.Name, trip.Price, trip.Image, trip.Spots, trip.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update trip: %v", err)
	}

	if _, err := tx.Exec("DELETE FROM itinerary_days WHERE trip_id = $1", trip.ID); err != nil {
		return fmt.Errorf("failed to clear itinerary: %v", err)
	}
	if err := insertItinerary(tx, trip.ID, trip.Itinerary); err != nil {
		return err
	}

	return tx.Commit()
}

func insertItinerary(tx *sql.Tx, tripID string, days []models.ItineraryDay) error {
	for i, day := range days {
		_, err := tx.Exec(
			"INSERT INTO itinerary_days (trip_id, position, title, description, image) VALUES ($1, $2, $3, $4, $5)",
			tripID, i+1, day.Title, day.Description, day.Image,
		)
		if err != nil {
			return fmt.Errorf("failed to insert itinerary day: %v", err)
		}
	}
	return nil
}

// Delete removes a trip; its itinerary days cascade.
func (r *TripRepository) Delete(id string) error {
	_, err := r.db.Exec("DELETE FROM trips WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %v", err)
	}
	return nil
}

// GetByID retrieves a trip with its itinerary by ID
func (r *TripRepository) GetByID(id string) (*models.Trip, error) {
	return r.getOne("SELECT id, name, price, image, spots FROM trips WHERE id = $1", id)
}

// GetByName retrieves a trip by display name, matched case-insensitively
func (r *TripRepository) GetByName(name string) (*models.Trip, error) {
	return r.getOne("SELECT id, name, price, image, spots FROM trips WHERE LOWER(name) = LOWER($1)", name)
}

func (r *TripRepository) getOne(query string, arg string) (*models.Trip, error) {
	var trip models.Trip
	err := r.db.QueryRow(query, arg).Scan(&trip.ID, &trip.Name, &trip.Price, &trip.Image, &trip.Spots)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("trip not found")
		}
		return nil, fmt.Errorf("failed to get trip: %v", err)
	}

	itinerary, err := r.getItinerary(trip.ID)
	if err != nil {
		return nil, err
	}
	trip.Itinerary = itinerary

	return &trip, nil
}

func (r *TripRepository) getItinerary(tripID string) ([]models.ItineraryDay, error) {
	rows, err := r.db.Query(
		"SELECT title, description, image FROM itinerary_days WHERE trip_id = $1 ORDER BY position",
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get itinerary: %v", err)
	}
	defer rows.Close()

	var days []models.ItineraryDay
	for rows.Next() {
		var day models.ItineraryDay
		if err := rows.Scan(&day.Title, &day.Description, &day.Image); err != nil {
			return nil, fmt.Errorf("failed to scan itinerary day: %v", err)
		}
		days = append(days, day)
	}
	return days, nil
}

// Search returns trips whose name contains the query, case-insensitively.
// An empty query returns all trips. Itineraries are not loaded for lists.
func (r *TripRepository) Search(query string) ([]models.Trip, error) {
	rows, err := r.db.Query(
		"SELECT id, name, price, image, spots FROM trips WHERE name ILIKE '%' || $1 || '%' ORDER BY name",
		query,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search trips: %v", err)
	}
	defer rows.Close()

	var trips []models.Trip
	for rows.Next() {
		var trip models.Trip
		if err := rows.Scan(&trip.ID, &trip.Name, &trip.Price, &trip.Image, &trip.Spots); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %v", err)
		}
		trips = append(trips, trip)
	}
	return trips, nil
}

// ListAll returns every trip (admin dashboard)
func (r *TripRepository) ListAll() ([]models.Trip, error) {
	return r.Search("")
}
