package models

import "time"

type RoomAmenity struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	RoomID      uint      `json:"room_id" gorm:"not null"`
	AmenityType string    `json:"amenity_type" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Room *Room `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}
