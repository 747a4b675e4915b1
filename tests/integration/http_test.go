//go:build integration

package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

// TestHTTP_FullFlow walks the documented end-to-end scenario: create a trip,
// book a traveller, read the nested view, then cascade-delete everything.
func TestHTTP_FullFlow(t *testing.T) {
	cleanTables()
	e := newApp()

	// Create Trip
	rec := doJSON(t, e, http.MethodPost, "/trips",
		`{"destination":"Paris","price":500.0,"length_in_days":5,"departure_date":"2025-06-01T00:00","return_date":"2025-06-06T00:00","isFull":false}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var trip map[string]any
	decode(t, rec, &trip)
	assert.Equal(t, float64(1), trip["id"])
	assert.Equal(t, "2025-06-01 00:00", trip["departure_date"])
	assert.Equal(t, "2025-06-06 00:00", trip["return_date"])
	assert.Equal(t, trip["created_at"], trip["updated_at"])

	// Add Traveller
	rec = doJSON(t, e, http.MethodPost, "/travellers",
		`{"trip_id":1,"name":"Ana","nationality":"RO","email":"a@x.com","phone":"123","hasPaid":false}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var traveller map[string]any
	decode(t, rec, &traveller)
	assert.Equal(t, float64(1), traveller["trip_id"])

	// Single-trip JSON nests the traveller
	rec = doJSON(t, e, http.MethodGet, "/trips?id=1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var detail struct {
		Destination string           `json:"destination"`
		Travellers  []map[string]any `json:"travellers"`
	}
	decode(t, rec, &detail)
	assert.Equal(t, "Paris", detail.Destination)
	require.Len(t, detail.Travellers, 1)
	assert.Equal(t, "Ana", detail.Travellers[0]["name"])

	// Cascade delete via the navigation route
	rec = doJSON(t, e, http.MethodGet, "/trips/delete/1", "")
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/trips", rec.Header().Get(echo.HeaderLocation))

	rec = doJSON(t, e, http.MethodGet, "/trips?id=1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/travellers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var all []map[string]any
	decode(t, rec, &all)
	assert.Empty(t, all)
}

func TestHTTP_PartialTravellerUpdate(t *testing.T) {
	cleanTables()
	e := newApp()

	rec := doJSON(t, e, http.MethodPost, "/trips",
		`{"destination":"Paris","price":500.0,"length_in_days":5,"departure_date":"2025-06-01T00:00","return_date":"2025-06-06T00:00","isFull":false}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, e, http.MethodPost, "/travellers",
		`{"trip_id":1,"name":"Ana","nationality":"RO","email":"a@x.com","phone":"123","hasPaid":false}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var before map[string]any
	decode(t, rec, &before)

	time.Sleep(20 * time.Millisecond)
	rec = doJSON(t, e, http.MethodPut, "/travellers/1", `{"hasPaid":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var after map[string]any
	decode(t, rec, &after)
	assert.Equal(t, true, after["hasPaid"])
	assert.Equal(t, before["name"], after["name"])
	assert.Equal(t, before["nationality"], after["nationality"])
	assert.Equal(t, before["email"], after["email"])
	assert.Equal(t, before["phone"], after["phone"])
	assert.Equal(t, before["trip_id"], after["trip_id"])
	assert.Equal(t, before["created_at"], after["created_at"])
}

func TestHTTP_CreateTrip_MissingFieldRejected(t *testing.T) {
	cleanTables()
	e := newApp()

	rec := doJSON(t, e, http.MethodPost, "/trips", `{"destination":"Paris"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	decode(t, rec, &resp)
	assert.Contains(t, resp["message"], "Price")
}

func TestHTTP_TravellerCreateWithMissingTrip(t *testing.T) {
	cleanTables()
	e := newApp()

	rec := doJSON(t, e, http.MethodPost, "/travellers",
		`{"trip_id":42,"name":"Ana","nationality":"RO","email":"a@x.com","phone":"123","hasPaid":false}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]string
	decode(t, rec, &resp)
	assert.Equal(t, "Trip 42 not found", resp["message"])
}

func TestHTTP_RootRedirects(t *testing.T) {
	cleanTables()
	e := newApp()

	rec := doJSON(t, e, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/trips", rec.Header().Get(echo.HeaderLocation))
}

func TestHTTP_ViewTravellersNotFoundIsPlainText(t *testing.T) {
	cleanTables()
	e := newApp()

	rec := doJSON(t, e, http.MethodGet, "/trips/9/travellers/view", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Trip not found", rec.Body.String())
}
