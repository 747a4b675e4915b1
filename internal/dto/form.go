package dto

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/vilimcapic/fipu-IS-projekt/internal/models"
)

// FormBool reports whether a submitted form value is the literal "true".
// Every other value, including "false", "1" and the empty string, is false.
func FormBool(v string) bool {
	return v == "true"
}

func formField(values url.Values, name string) (string, error) {
	if !values.Has(name) || values.Get(name) == "" {
		return "", fmt.Errorf("%s is required", name)
	}
	return values.Get(name), nil
}

func formFloat(values url.Values, name string) (float64, error) {
	raw, err := formField(values, name)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return f, nil
}

func formInt(values url.Values, name string) (int, error) {
	raw, err := formField(values, name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return n, nil
}

func formDateTime(values url.Values, name string) (time.Time, error) {
	raw, err := formField(values, name)
	if err != nil {
		return time.Time{}, err
	}
	parsed, err := ParseDateTime(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", name, err)
	}
	return parsed, nil
}

// TripFromForm builds a Trip from the creation form. The form has no isFull
// field, so new trips always start out not full.
func TripFromForm(values url.Values) (*models.Trip, error) {
	destination, err := formField(values, "destination")
	if err != nil {
		return nil, err
	}
	price, err := formFloat(values, "price")
	if err != nil {
		return nil, err
	}
	days, err := formInt(values, "length_in_days")
	if err != nil {
		return nil, err
	}
	departure, err := formDateTime(values, "departure_date")
	if err != nil {
		return nil, err
	}
	ret, err := formDateTime(values, "return_date")
	if err != nil {
		return nil, err
	}
	if ret.Before(departure) {
		return nil, fmt.Errorf("return_date must not be before departure_date")
	}

	return &models.Trip{
		Destination:   destination,
		Price:         price,
		LengthInDays:  days,
		DepartureDate: departure,
		ReturnDate:    ret,
		IsFull:        false,
	}, nil
}

// TripPatchFromForm builds a full-field patch from the edit form.
func TripPatchFromForm(values url.Values) (*TripPatch, error) {
	trip, err := TripFromForm(values)
	if err != nil {
		return nil, err
	}
	isFull := FormBool(values.Get("isFull"))
	return &TripPatch{
		Destination:   &trip.Destination,
		Price:         &trip.Price,
		LengthInDays:  &trip.LengthInDays,
		DepartureDate: &trip.DepartureDate,
		ReturnDate:    &trip.ReturnDate,
		IsFull:        &isFull,
	}, nil
}

// TravellerFromForm builds a Traveller from the trip-scoped creation form.
// The owning trip comes from the URL, not the form.
func TravellerFromForm(values url.Values) (*models.Traveller, error) {
	name, err := formField(values, "name")
	if err != nil {
		return nil, err
	}
	nationality, err := formField(values, "nationality")
	if err != nil {
		return nil, err
	}
	email, err := formField(values, "email")
	if err != nil {
		return nil, err
	}
	phone, err := formField(values, "phone")
	if err != nil {
		return nil, err
	}

	return &models.Traveller{
		Name:        name,
		Nationality: nationality,
		Email:       email,
		Phone:       phone,
		HasPaid:     FormBool(values.Get("hasPaid")),
	}, nil
}

// TravellerPatchFromForm builds a patch from the edit form. It never sets
// TripID: forms cannot re-parent a traveller.
func TravellerPatchFromForm(values url.Values) (*TravellerPatch, error) {
	traveller, err := TravellerFromForm(values)
	if err != nil {
		return nil, err
	}
	return &TravellerPatch{
		Name:        &traveller.Name,
		Nationality: &traveller.Nationality,
		Email:       &traveller.Email,
		Phone:       &traveller.Phone,
		HasPaid:     &traveller.HasPaid,
	}, nil
}
