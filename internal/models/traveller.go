package models

import "time"

type Traveller struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TripID      uint      `gorm:"not null" json:"trip_id"`
	Name        string    `gorm:"not null" json:"name"`
	Nationality string    `gorm:"not null" json:"nationality"`
	Email       string    `gorm:"not null" json:"email"`
	Phone       string    `gorm:"not null" json:"phone"`
	HasPaid     bool      `gorm:"not null" json:"hasPaid"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Trip *Trip `gorm:"foreignKey:TripID" json:"trip,omitempty"`
}
