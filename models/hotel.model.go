package models

import "time"

type Hotel struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Location    string    `json:"location" gorm:"not null"`
	Rating      float64   `json:"rating" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Rooms      []Room      `json:"rooms,omitempty" gorm:"foreignKey:HotelID"`
	Reviews    []Review    `json:"reviews,omitempty" gorm:"foreignKey:HotelID"`
	Promotions []Promotion `json:"promotions,omitempty" gorm:"foreignKey:HotelID"`
	Services   []Service   `json:"services,omitempty" gorm:"foreignKey:HotelID"`
}
