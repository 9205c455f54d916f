package models

import "time"

type PaymentRecord struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	ReservationID uint      `json:"reservation_id" gorm:"not null"`
	Amount        float64   `json:"amount" gorm:"not null"`
	PaymentDate   time.Time `json:"payment_date"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Reservation *Reservation `json:"reservation,omitempty" gorm:"foreignKey:ReservationID"`
}
