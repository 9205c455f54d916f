package models

import "time"

type Review struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null"`
	HotelID    uint      `json:"hotel_id" gorm:"not null"`
	Rating     float64   `json:"rating" gorm:"not null"`
	Comment    string    `json:"comment" gorm:"type:text"`
	ReviewDate time.Time `json:"review_date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Hotel *Hotel `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
}
