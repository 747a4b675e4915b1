package dto

import (
	"time"

	"github.com/vilimcapic/fipu-IS-projekt/internal/models"
)

const (
	// timestampLayout is used for every timestamp in JSON responses.
	timestampLayout = "2006-01-02 15:04"
	// dateLayout is the day-precision format of the HTML trip list.
	dateLayout = "2006-01-02"
	// formInputLayout matches the value format of datetime-local inputs.
	formInputLayout = "2006-01-02T15:04"
)

func FormatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

type TripResponse struct {
	ID            uint    `json:"id"`
	Destination   string  `json:"destination"`
	Price         float64 `json:"price"`
	LengthInDays  int     `json:"length_in_days"`
	DepartureDate string  `json:"departure_date"`
	ReturnDate    string  `json:"return_date"`
	IsFull        bool    `json:"isFull"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type TripDetailResponse struct {
	TripResponse
	Travellers []TravellerResponse `json:"travellers"`
}

type TravellerResponse struct {
	ID          uint   `json:"id"`
	TripID      uint   `json:"trip_id"`
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	HasPaid     bool   `json:"hasPaid"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func ToTripResponse(t *models.Trip) TripResponse {
	return TripResponse{
		ID:            t.ID,
		Destination:   t.Destination,
		Price:         t.Price,
		LengthInDays:  t.LengthInDays,
		DepartureDate: t.DepartureDate.Format(timestampLayout),
		ReturnDate:    t.ReturnDate.Format(timestampLayout),
		IsFull:        t.IsFull,
		CreatedAt:     t.CreatedAt.Format(timestampLayout),
		UpdatedAt:     t.UpdatedAt.Format(timestampLayout),
	}
}

func ToTripDetailResponse(t *models.Trip) TripDetailResponse {
	travellers := make([]TravellerResponse, len(t.Travellers))
	for i, tr := range t.Travellers {
		travellers[i] = ToTravellerResponse(&tr)
	}
	return TripDetailResponse{
		TripResponse: ToTripResponse(t),
		Travellers:   travellers,
	}
}

func ToTravellerResponse(t *models.Traveller) TravellerResponse {
	return TravellerResponse{
		ID:          t.ID,
		TripID:      t.TripID,
		Name:        t.Name,
		Nationality: t.Nationality,
		Email:       t.Email,
		Phone:       t.Phone,
		HasPaid:     t.HasPaid,
		CreatedAt:   t.CreatedAt.Format(timestampLayout),
		UpdatedAt:   t.UpdatedAt.Format(timestampLayout),
	}
}

// TripListItem is the compact projection rendered on the HTML trip list.
type TripListItem struct {
	ID            uint
	Destination   string
	Price         float64
	LengthInDays  int
	DepartureDate string
	ReturnDate    string
	IsFull        bool
}

func ToTripListItem(t *models.Trip) TripListItem {
	return TripListItem{
		ID:            t.ID,
		Destination:   t.Destination,
		Price:         t.Price,
		LengthInDays:  t.LengthInDays,
		DepartureDate: t.DepartureDate.Format(dateLayout),
		ReturnDate:    t.ReturnDate.Format(dateLayout),
		IsFull:        t.IsFull,
	}
}

// TripFormView carries a trip's current values into the edit form.
type TripFormView struct {
	ID            uint
	Destination   string
	Price         float64
	LengthInDays  int
	DepartureDate string
	ReturnDate    string
	IsFull        bool
}

func ToTripFormView(t *models.Trip) TripFormView {
	return TripFormView{
		ID:            t.ID,
		Destination:   t.Destination,
		Price:         t.Price,
		LengthInDays:  t.LengthInDays,
		DepartureDate: t.DepartureDate.Format(formInputLayout),
		ReturnDate:    t.ReturnDate.Format(formInputLayout),
		IsFull:        t.IsFull,
	}
}

type TravellerView struct {
	ID          uint
	TripID      uint
	Name        string
	Nationality string
	Email       string
	Phone       string
	HasPaid     bool
}

func ToTravellerView(t *models.Traveller) TravellerView {
	return TravellerView{
		ID:          t.ID,
		TripID:      t.TripID,
		Name:        t.Name,
		Nationality: t.Nationality,
		Email:       t.Email,
		Phone:       t.Phone,
		HasPaid:     t.HasPaid,
	}
}

// TripTravellersView backs the trip + travellers HTML page.
type TripTravellersView struct {
	Trip       TripListItem
	Travellers []TravellerView
}

func ToTripTravellersView(t *models.Trip) TripTravellersView {
	travellers := make([]TravellerView, len(t.Travellers))
	for i, tr := range t.Travellers {
		travellers[i] = ToTravellerView(&tr)
	}
	return TripTravellersView{
		Trip:       ToTripListItem(t),
		Travellers: travellers,
	}
}
