//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vilimcapic/fipu-IS-projekt/internal/dto"
	"github.com/vilimcapic/fipu-IS-projekt/internal/models"
	"github.com/vilimcapic/fipu-IS-projekt/internal/service"
)

func TestCreateTraveller_MissingTripPersistsNothing(t *testing.T) {
	cleanTables()
	_, travellerSvc := newServices()

	err := travellerSvc.CreateTraveller(context.Background(), &models.Traveller{
		TripID: 99, Name: "Ana", Nationality: "RO", Email: "a@x.com", Phone: "123",
	})
	assert.ErrorIs(t, err, service.ErrTripNotFound)

	var count int64
	testDB.Model(&models.Traveller{}).Count(&count)
	assert.Zero(t, count)
}

func TestUpdateTraveller_Reparent(t *testing.T) {
	cleanTables()
	tripSvc, travellerSvc := newServices()
	ctx := context.Background()

	first := newTrip()
	require.NoError(t, tripSvc.CreateTrip(ctx, first))
	second := newTrip()
	second.Destination = "Rome"
	require.NoError(t, tripSvc.CreateTrip(ctx, second))

	traveller := &models.Traveller{TripID: first.ID, Name: "Ana", Nationality: "RO", Email: "a@x.com", Phone: "123"}
	require.NoError(t, travellerSvc.CreateTraveller(ctx, traveller))

	_, err := travellerSvc.UpdateTraveller(ctx, traveller.ID, &dto.TravellerPatch{TripID: &second.ID})
	require.NoError(t, err)

	oldList, err := travellerSvc.ListTravellersByTrip(ctx, first.ID)
	require.NoError(t, err)
	assert.Empty(t, oldList)

	newList, err := travellerSvc.ListTravellersByTrip(ctx, second.ID)
	require.NoError(t, err)
	require.Len(t, newList, 1)
	assert.Equal(t, traveller.ID, newList[0].ID)
}

func TestUpdateTraveller_PartialKeepsOtherFields(t *testing.T) {
	cleanTables()
	tripSvc, travellerSvc := newServices()
	ctx := context.Background()

	trip := newTrip()
	require.NoError(t, tripSvc.CreateTrip(ctx, trip))

	traveller := &models.Traveller{TripID: trip.ID, Name: "Ana", Nationality: "RO", Email: "a@x.com", Phone: "123"}
	require.NoError(t, travellerSvc.CreateTraveller(ctx, traveller))
	before := traveller.UpdatedAt

	time.Sleep(20 * time.Millisecond)

	hasPaid := true
	updated, err := travellerSvc.UpdateTraveller(ctx, traveller.ID, &dto.TravellerPatch{HasPaid: &hasPaid})
	require.NoError(t, err)

	assert.True(t, updated.HasPaid)
	assert.Equal(t, "Ana", updated.Name)
	assert.Equal(t, "RO", updated.Nationality)
	assert.Equal(t, "a@x.com", updated.Email)
	assert.Equal(t, "123", updated.Phone)
	assert.Equal(t, trip.ID, updated.TripID)
	assert.True(t, updated.UpdatedAt.After(before))
}

func TestDeleteTraveller_RemovesOnlyThatTraveller(t *testing.T) {
	cleanTables()
	tripSvc, travellerSvc := newServices()
	ctx := context.Background()

	trip := newTrip()
	require.NoError(t, tripSvc.CreateTrip(ctx, trip))

	keep := &models.Traveller{TripID: trip.ID, Name: "Ana", Nationality: "RO", Email: "a@x.com", Phone: "123"}
	drop := &models.Traveller{TripID: trip.ID, Name: "Bo", Nationality: "SE", Email: "b@x.com", Phone: "456"}
	require.NoError(t, travellerSvc.CreateTraveller(ctx, keep))
	require.NoError(t, travellerSvc.CreateTraveller(ctx, drop))

	removed, err := travellerSvc.DeleteTraveller(ctx, drop.ID)
	require.NoError(t, err)
	assert.Equal(t, trip.ID, removed.TripID)

	remaining, err := travellerSvc.ListTravellersByTrip(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, keep.ID, remaining[0].ID)
}
