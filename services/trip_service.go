// services/trip_service.go
package services

import (
	"strings"

	"github.com/dhouwanderer/wanderer-backend/models"
	"github.com/dhouwanderer/wanderer-backend/utils"
)

// TripStore is the persistence surface for trip listings
type TripStore interface {
	Store(trip *models.Trip) error
	Update(trip *models.Trip) error
	Delete(id string) error
	GetByID(id string) (*models.Trip, error)
	GetByName(name string) (*models.Trip, error)
	Search(query string) ([]models.Trip, error)
	ListAll() ([]models.Trip, error)
}

// TripService handles trip listings: public browsing plus the admin CMS side
type TripService struct {
	trips TripStore
}

// NewTripService creates a new trip service
func NewTripService(trips TripStore) *TripService {
	return &TripService{trips: trips}
}

// ItineraryDayForm is one itinerary day as submitted by the edit form
type ItineraryDayForm struct {
	Title         string
	Description   string
	ExistingImage string
	UploadedImage string
}

// BuildItinerary assembles the stored itinerary from submitted day forms in
// submitted order. Days with an empty title are dropped. A freshly uploaded
// image wins over the existing one.
func BuildItinerary(days []ItineraryDayForm) []models.ItineraryDay {
	var itinerary []models.ItineraryDay
	for _, day := range days {
		if strings.TrimSpace(day.Title) == "" {
			continue
		}
		image := day.ExistingImage
		if day.UploadedImage != "" {
			image = day.UploadedImage
		}
		itinerary = append(itinerary, models.ItineraryDay{
			Title:       day.Title,
			Description: day.Description,
			Image:       image,
		})
	}
	return itinerary
}

// SearchTrips returns trips matching a case-insensitive name search;
// an empty query lists everything.
func (s *TripService) SearchTrips(query string) ([]models.Trip, error) {
	trips, err := s.trips.Search(query)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	return trips, nil
}

// GetTripBySlug resolves a URL slug ("goa-getaway") to its trip,
// matched case-insensitively against the display name.
func (s *TripService) GetTripBySlug(slug string) (*models.Trip, error) {
	trip, err := s.trips.GetByName(utils.SlugToName(slug))
	if err != nil {
		return nil, utils.NewNotFoundError("Trip")
	}
	return trip, nil
}

// GetTrip returns a trip by ID (admin edit page)
func (s *TripService) GetTrip(id string) (*models.Trip, error) {
	trip, err := s.trips.GetByID(id)
	if err != nil {
		return nil, utils.NewNotFoundError("Trip")
	}
	return trip, nil
}

// CreateTrip stores a new trip listing
func (s *TripService) CreateTrip(trip *models.Trip) error {
	if err := utils.ValidateRequired(trip.Name, "trip name"); err != nil {
		return err
	}
	if trip.Image == "" {
		trip.Image = utils.PlaceholderImage
	}
	if err := s.trips.Store(trip); err != nil {
		return utils.NewInternalError(utils.ErrFailedToStore)
	}
	return nil
}

// UpdateTrip overwrites a trip listing, itinerary included
func (s *TripService) UpdateTrip(trip *models.Trip) error {
	if _, err := s.trips.GetByID(trip.ID); err != nil {
		return utils.NewNotFoundError("Trip")
	}
	if err := s.trips.Update(trip); err != nil {
		return utils.NewInternalError(utils.ErrFailedToStore)
	}
	return nil
}

// DeleteTrip removes a trip listing
func (s *TripService) DeleteTrip(id string) error {
	if err := s.trips.Delete(id); err != nil {
		return utils.NewInternalError(utils.ErrFailedToStore)
	}
	return nil
}

// ListTrips returns every trip (admin dashboard)
func (s *TripService) ListTrips() ([]models.Trip, error) {
	trips, err := s.trips.ListAll()
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	return trips, nil
}
