package models

import "time"

// Room keeps the camelCase roomNumber JSON key; that is the wire format
// clients already depend on.
type Room struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	HotelID      uint      `json:"hotel_id" gorm:"not null;uniqueIndex:idx_rooms_hotel_number"`
	RoomNumber   int       `json:"roomNumber" gorm:"not null;uniqueIndex:idx_rooms_hotel_number"`
	RoomType     string    `json:"room_type"`
	Price        float64   `json:"price"`
	Availability bool      `json:"availability"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Hotel     *Hotel        `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
	Amenities []RoomAmenity `json:"amenities,omitempty" gorm:"foreignKey:RoomID"`
}
