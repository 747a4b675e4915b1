package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime_AcceptedLayouts(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2025-06-01T00:00", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"2025-06-01T15:04:05", time.Date(2025, 6, 1, 15, 4, 5, 0, time.UTC)},
		{"2025-06-01", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"2025-06-01T15:04:05Z", time.Date(2025, 6, 1, 15, 4, 5, 0, time.UTC)},
	}

	for _, tc := range cases {
		got, err := ParseDateTime(tc.in)
		require.NoError(t, err, tc.in)
		assert.True(t, got.Equal(tc.want), "parsing %s", tc.in)
	}
}

func TestParseDateTime_Invalid(t *testing.T) {
	_, err := ParseDateTime("01.06.2025")
	assert.Error(t, err)

	_, err = ParseDateTime("")
	assert.Error(t, err)
}

func TestCreateTripRequest_ToModel(t *testing.T) {
	price := 500.0
	days := 5
	isFull := false
	req := &CreateTripRequest{
		Destination:   "Paris",
		Price:         &price,
		LengthInDays:  &days,
		DepartureDate: "2025-06-01T00:00",
		ReturnDate:    "2025-06-06T00:00",
		IsFull:        &isFull,
	}

	trip, err := req.ToModel()
	require.NoError(t, err)
	assert.Equal(t, "Paris", trip.Destination)
	assert.Equal(t, 500.0, trip.Price)
	assert.Equal(t, 5, trip.LengthInDays)
	assert.False(t, trip.IsFull)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), trip.DepartureDate)
}

func TestCreateTripRequest_ReturnBeforeDeparture(t *testing.T) {
	price := 500.0
	days := 5
	isFull := false
	req := &CreateTripRequest{
		Destination:   "Paris",
		Price:         &price,
		LengthInDays:  &days,
		DepartureDate: "2025-06-06T00:00",
		ReturnDate:    "2025-06-01T00:00",
		IsFull:        &isFull,
	}

	_, err := req.ToModel()
	assert.ErrorContains(t, err, "return_date")
}

func TestUpdateTripRequest_ToPatch_PartialFields(t *testing.T) {
	dest := "Rome"
	req := &UpdateTripRequest{Destination: &dest}

	patch, err := req.ToPatch()
	require.NoError(t, err)
	assert.Equal(t, "Rome", *patch.Destination)
	assert.Nil(t, patch.Price)
	assert.Nil(t, patch.DepartureDate)
	assert.Nil(t, patch.IsFull)
}

func TestUpdateTripRequest_ToPatch_BadDate(t *testing.T) {
	bad := "not-a-date"
	req := &UpdateTripRequest{ReturnDate: &bad}

	_, err := req.ToPatch()
	assert.ErrorContains(t, err, "return_date")
}
