package models

import "time"

type ServiceReservation struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	ReservationID uint      `json:"reservation_id" gorm:"not null"`
	ServiceID     uint      `json:"service_id" gorm:"not null"`
	Quantity      int       `json:"quantity" gorm:"not null"`
	Price         float64   `json:"price" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Reservation *Reservation `json:"reservation,omitempty" gorm:"foreignKey:ReservationID"`
	Service     *Service     `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
}
