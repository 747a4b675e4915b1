package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vilimcapic/fipu-IS-projekt/internal/dto"
	"github.com/vilimcapic/fipu-IS-projekt/internal/models"
	"github.com/vilimcapic/fipu-IS-projekt/internal/repository"
	"github.com/vilimcapic/fipu-IS-projekt/pkg/rabbitmq"
	"gorm.io/gorm"
)

var (
	ErrTripNotFound      = errors.New("trip not found")
	ErrTravellerNotFound = errors.New("traveller not found")
)

type TripService interface {
	CreateTrip(ctx context.Context, trip *models.Trip) error
	GetTrip(ctx context.Context, id uint) (*models.Trip, error)
	ListTrips(ctx context.Context) ([]models.Trip, error)
	UpdateTrip(ctx context.Context, id uint, patch *dto.TripPatch) (*models.Trip, error)
	DeleteTrip(ctx context.Context, id uint) error
}

type tripService struct {
	tripRepo      repository.TripRepository
	travellerRepo repository.TravellerRepository
	publisher     *rabbitmq.Publisher
}

func NewTripService(tripRepo repository.TripRepository, travellerRepo repository.TravellerRepository, publisher *rabbitmq.Publisher) TripService {
	return &tripService{
		tripRepo:      tripRepo,
		travellerRepo: travellerRepo,
		publisher:     publisher,
	}
}

func (s *tripService) CreateTrip(ctx context.Context, trip *models.Trip) error {
	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return fmt.Errorf("create trip: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("trip.created", trip)
	}

	return nil
}

// GetTrip returns the trip with its travellers preloaded.
func (s *tripService) GetTrip(ctx context.Context, id uint) (*models.Trip, error) {
	trip, err := s.tripRepo.FindByIDWithTravellers(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	return trip, nil
}

func (s *tripService) ListTrips(ctx context.Context) ([]models.Trip, error) {
	return s.tripRepo.FindAll(ctx)
}

func (s *tripService) UpdateTrip(ctx context.Context, id uint, patch *dto.TripPatch) (*models.Trip, error) {
	trip, err := s.tripRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}

	if patch.Destination != nil {
		trip.Destination = *patch.Destination
	}
	if patch.Price != nil {
		trip.Price = *patch.Price
	}
	if patch.LengthInDays != nil {
		trip.LengthInDays = *patch.LengthInDays
	}
	if patch.DepartureDate != nil {
		trip.DepartureDate = *patch.DepartureDate
	}
	if patch.ReturnDate != nil {
		trip.ReturnDate = *patch.ReturnDate
	}
	if patch.IsFull != nil {
		trip.IsFull = *patch.IsFull
	}

	// Save refreshes updated_at even when the patch is empty.
	if err := s.tripRepo.Save(ctx, trip); err != nil {
		return nil, fmt.Errorf("update trip: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("trip.updated", trip)
	}

	return trip, nil
}

// DeleteTrip removes the trip and all its travellers in one transaction.
func (s *tripService) DeleteTrip(ctx context.Context, id uint) error {
	if _, err := s.tripRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTripNotFound
		}
		return err
	}

	err := s.tripRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.travellerRepo.DeleteByTripID(ctx, tx, id); err != nil {
			return fmt.Errorf("delete travellers of trip %d: %w", id, err)
		}
		if err := s.tripRepo.Delete(ctx, tx, id); err != nil {
			return fmt.Errorf("delete trip %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("trip.deleted", map[string]uint{"id": id})
	}

	return nil
}
