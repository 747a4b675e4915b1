package dto

import (
	"errors"
	"fmt"
	"time"

	"github.com/vilimcapic/fipu-IS-projekt/internal/models"
)

// Accepted input layouts: RFC3339 or ISO-8601 without a timezone suffix.
var inputLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func ParseDateTime(s string) (time.Time, error) {
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date-time %q", s)
}

type CreateTripRequest struct {
	Destination   string   `json:"destination" validate:"required"`
	Price         *float64 `json:"price" validate:"required,gte=0"`
	LengthInDays  *int     `json:"length_in_days" validate:"required,gt=0"`
	DepartureDate string   `json:"departure_date" validate:"required"`
	ReturnDate    string   `json:"return_date" validate:"required"`
	IsFull        *bool    `json:"isFull" validate:"required"`
}

func (r *CreateTripRequest) ToModel() (*models.Trip, error) {
	departure, err := ParseDateTime(r.DepartureDate)
	if err != nil {
		return nil, fmt.Errorf("departure_date: %w", err)
	}
	ret, err := ParseDateTime(r.ReturnDate)
	if err != nil {
		return nil, fmt.Errorf("return_date: %w", err)
	}
	if ret.Before(departure) {
		return nil, errors.New("return_date must not be before departure_date")
	}

	return &models.Trip{
		Destination:   r.Destination,
		Price:         *r.Price,
		LengthInDays:  *r.LengthInDays,
		DepartureDate: departure,
		ReturnDate:    ret,
		IsFull:        *r.IsFull,
	}, nil
}

type UpdateTripRequest struct {
	Destination   *string  `json:"destination"`
	Price         *float64 `json:"price" validate:"omitempty,gte=0"`
	LengthInDays  *int     `json:"length_in_days" validate:"omitempty,gt=0"`
	DepartureDate *string  `json:"departure_date"`
	ReturnDate    *string  `json:"return_date"`
	IsFull        *bool    `json:"isFull"`
}

// TripPatch is the typed partial-update set applied by the service layer.
// Nil fields are left untouched.
type TripPatch struct {
	Destination   *string
	Price         *float64
	LengthInDays  *int
	DepartureDate *time.Time
	ReturnDate    *time.Time
	IsFull        *bool
}

func (r *UpdateTripRequest) ToPatch() (*TripPatch, error) {
	patch := &TripPatch{
		Destination:  r.Destination,
		Price:        r.Price,
		LengthInDays: r.LengthInDays,
		IsFull:       r.IsFull,
	}
	if r.DepartureDate != nil {
		t, err := ParseDateTime(*r.DepartureDate)
		if err != nil {
			return nil, fmt.Errorf("departure_date: %w", err)
		}
		patch.DepartureDate = &t
	}
	if r.ReturnDate != nil {
		t, err := ParseDateTime(*r.ReturnDate)
		if err != nil {
			return nil, fmt.Errorf("return_date: %w", err)
		}
		patch.ReturnDate = &t
	}
	return patch, nil
}

type CreateTravellerRequest struct {
	TripID      uint   `json:"trip_id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Nationality string `json:"nationality" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	HasPaid     *bool  `json:"hasPaid" validate:"required"`
}

func (r *CreateTravellerRequest) ToModel() *models.Traveller {
	return &models.Traveller{
		TripID:      r.TripID,
		Name:        r.Name,
		Nationality: r.Nationality,
		Email:       r.Email,
		Phone:       r.Phone,
		HasPaid:     *r.HasPaid,
	}
}

// TravellerPatch doubles as the PUT request body and the typed partial-update
// set. TripID re-parents the traveller; the form edit path never sets it.
type TravellerPatch struct {
	TripID      *uint   `json:"trip_id"`
	Name        *string `json:"name"`
	Nationality *string `json:"nationality"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	HasPaid     *bool   `json:"hasPaid"`
}
