package repository

import (
	"context"

	"github.com/vilimcapic/fipu-IS-projekt/internal/models"
	"gorm.io/gorm"
)

type TripRepository interface {
	Create(ctx context.Context, trip *models.Trip) error
	FindByID(ctx context.Context, id uint) (*models.Trip, error)
	FindByIDWithTravellers(ctx context.Context, id uint) (*models.Trip, error)
	FindAll(ctx context.Context) ([]models.Trip, error)
	Save(ctx context.Context, trip *models.Trip) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	GetDB() *gorm.DB
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *tripRepository) Create(ctx context.Context, trip *models.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) FindByID(ctx context.Context, id uint) (*models.Trip, error) {
	var trip models.Trip
	if err := r.db.WithContext(ctx).First(&trip, id).Error; err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) FindByIDWithTravellers(ctx context.Context, id uint) (*models.Trip, error) {
	var trip models.Trip
	err := r.db.WithContext(ctx).
		Preload("Travellers", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		First(&trip, id).Error
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) FindAll(ctx context.Context) ([]models.Trip, error) {
	var trips []models.Trip
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) Save(ctx context.Context, trip *models.Trip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

func (r *tripRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return tx.WithContext(ctx).Delete(&models.Trip{}, id).Error
}
