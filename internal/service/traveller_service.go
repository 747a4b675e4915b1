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

type TravellerService interface {
	CreateTraveller(ctx context.Context, traveller *models.Traveller) error
	GetTraveller(ctx context.Context, id uint) (*models.Traveller, error)
	ListTravellers(ctx context.Context) ([]models.Traveller, error)
	ListTravellersByTrip(ctx context.Context, tripID uint) ([]models.Traveller, error)
	UpdateTraveller(ctx context.Context, id uint, patch *dto.TravellerPatch) (*models.Traveller, error)
	DeleteTraveller(ctx context.Context, id uint) (*models.Traveller, error)
}

type travellerService struct {
	travellerRepo repository.TravellerRepository
	tripRepo      repository.TripRepository
	publisher     *rabbitmq.Publisher
}

func NewTravellerService(travellerRepo repository.TravellerRepository, tripRepo repository.TripRepository, publisher *rabbitmq.Publisher) TravellerService {
	return &travellerService{
		travellerRepo: travellerRepo,
		tripRepo:      tripRepo,
		publisher:     publisher,
	}
}

// CreateTraveller persists nothing when the referenced trip does not exist.
func (s *travellerService) CreateTraveller(ctx context.Context, traveller *models.Traveller) error {
	if _, err := s.tripRepo.FindByID(ctx, traveller.TripID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTripNotFound
		}
		return err
	}

	if err := s.travellerRepo.Create(ctx, traveller); err != nil {
		return fmt.Errorf("create traveller: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("traveller.created", traveller)
	}

	return nil
}

func (s *travellerService) GetTraveller(ctx context.Context, id uint) (*models.Traveller, error) {
	traveller, err := s.travellerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTravellerNotFound
		}
		return nil, err
	}
	return traveller, nil
}

func (s *travellerService) ListTravellers(ctx context.Context) ([]models.Traveller, error) {
	return s.travellerRepo.FindAll(ctx)
}

func (s *travellerService) ListTravellersByTrip(ctx context.Context, tripID uint) ([]models.Traveller, error) {
	if _, err := s.tripRepo.FindByID(ctx, tripID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	return s.travellerRepo.FindByTripID(ctx, tripID)
}

func (s *travellerService) UpdateTraveller(ctx context.Context, id uint, patch *dto.TravellerPatch) (*models.Traveller, error) {
	traveller, err := s.travellerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTravellerNotFound
		}
		return nil, err
	}

	// Re-parenting requires the target trip to exist.
	if patch.TripID != nil {
		if _, err := s.tripRepo.FindByID(ctx, *patch.TripID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTripNotFound
			}
			return nil, err
		}
		traveller.TripID = *patch.TripID
	}
	if patch.Name != nil {
		traveller.Name = *patch.Name
	}
	if patch.Nationality != nil {
		traveller.Nationality = *patch.Nationality
	}
	if patch.Email != nil {
		traveller.Email = *patch.Email
	}
	if patch.Phone != nil {
		traveller.Phone = *patch.Phone
	}
	if patch.HasPaid != nil {
		traveller.HasPaid = *patch.HasPaid
	}

	if err := s.travellerRepo.Save(ctx, traveller); err != nil {
		return nil, fmt.Errorf("update traveller: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("traveller.updated", traveller)
	}

	return traveller, nil
}

// DeleteTraveller returns the removed record so callers can navigate back to
// the owning trip.
func (s *travellerService) DeleteTraveller(ctx context.Context, id uint) (*models.Traveller, error) {
	traveller, err := s.travellerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTravellerNotFound
		}
		return nil, err
	}

	if err := s.travellerRepo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete traveller %d: %w", id, err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("traveller.deleted", map[string]uint{"id": id, "trip_id": traveller.TripID})
	}

	return traveller, nil
}
