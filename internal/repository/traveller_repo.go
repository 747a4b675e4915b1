package repository

import (
	"context"

	"github.com/vilimcapic/fipu-IS-projekt/internal/models"
	"gorm.io/gorm"
)

type TravellerRepository interface {
	Create(ctx context.Context, traveller *models.Traveller) error
	FindByID(ctx context.Context, id uint) (*models.Traveller, error)
	FindAll(ctx context.Context) ([]models.Traveller, error)
	FindByTripID(ctx context.Context, tripID uint) ([]models.Traveller, error)
	Save(ctx context.Context, traveller *models.Traveller) error
	Delete(ctx context.Context, id uint) error
	DeleteByTripID(ctx context.Context, tx *gorm.DB, tripID uint) error
}

type travellerRepository struct {
	db *gorm.DB
}

func NewTravellerRepository(db *gorm.DB) TravellerRepository {
	return &travellerRepository{db: db}
}

func (r *travellerRepository) Create(ctx context.Context, traveller *models.Traveller) error {
	return r.db.WithContext(ctx).Create(traveller).Error
}

func (r *travellerRepository) FindByID(ctx context.Context, id uint) (*models.Traveller, error) {
	var traveller models.Traveller
	if err := r.db.WithContext(ctx).First(&traveller, id).Error; err != nil {
		return nil, err
	}
	return &traveller, nil
}

func (r *travellerRepository) FindAll(ctx context.Context) ([]models.Traveller, error) {
	var travellers []models.Traveller
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&travellers).Error; err != nil {
		return nil, err
	}
	return travellers, nil
}

func (r *travellerRepository) FindByTripID(ctx context.Context, tripID uint) ([]models.Traveller, error) {
	var travellers []models.Traveller
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("id ASC").
		Find(&travellers).Error
	if err != nil {
		return nil, err
	}
	return travellers, nil
}

func (r *travellerRepository) Save(ctx context.Context, traveller *models.Traveller) error {
	return r.db.WithContext(ctx).Save(traveller).Error
}

func (r *travellerRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Traveller{}, id).Error
}

func (r *travellerRepository) DeleteByTripID(ctx context.Context, tx *gorm.DB, tripID uint) error {
	return tx.WithContext(ctx).Where("trip_id = ?", tripID).Delete(&models.Traveller{}).Error
}
