package models

import "time"

type Service struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	HotelID     uint      `json:"hotel_id" gorm:"not null"`
	ServiceType string    `json:"service_type" gorm:"not null"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Hotel        *Hotel               `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
	Reservations []ServiceReservation `json:"reservations,omitempty" gorm:"foreignKey:ServiceID"`
}
