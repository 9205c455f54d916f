package models

import "time"

type Reservation struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"not null"`
	RoomID       uint      `json:"room_id" gorm:"not null"`
	CheckInDate  time.Time `json:"check_in_date"`
	CheckOutDate time.Time `json:"check_out_date"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Room *Room `json:"room,omitempty" gorm:"foreignKey:RoomID"`

	// Services holds the service_reservation rows booked against this stay.
	Services       []ServiceReservation `json:"services,omitempty" gorm:"foreignKey:ReservationID"`
	PaymentRecords []PaymentRecord      `json:"payment_records,omitempty" gorm:"foreignKey:ReservationID"`
}
