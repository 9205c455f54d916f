package models

import "time"

type Promotion struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	HotelID            uint      `json:"hotel_id" gorm:"not null"`
	PromotionType      string    `json:"promotion_type" gorm:"not null"`
	DiscountPercentage float64   `json:"discount_percentage" gorm:"not null"`
	StartDate          time.Time `json:"start_date"`
	EndDate            time.Time `json:"end_date"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	Hotel *Hotel `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
}
