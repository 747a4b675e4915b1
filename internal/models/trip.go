package models

import "time"

type Trip struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Destination   string    `gorm:"not null" json:"destination"`
	Price         float64   `gorm:"not null" json:"price"`
	LengthInDays  int       `gorm:"not null" json:"length_in_days"`
	DepartureDate time.Time `gorm:"not null" json:"departure_date"`
	ReturnDate    time.Time `gorm:"not null" json:"return_date"`
	IsFull        bool      `gorm:"not null" json:"isFull"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Travellers []Traveller `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE" json:"travellers,omitempty"`
}
