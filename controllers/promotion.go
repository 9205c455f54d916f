package controllers

import (
	"errors"
	"time"

	"hbs/middleware"
	"hbs/models"
	"hbs/validators"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PromotionController struct {
	db *gorm.DB
}

func NewPromotionController(db *gorm.DB) *PromotionController {
	return &PromotionController{db: db}
}

func (p *PromotionController) GetAllPromotions(c *fiber.Ctx) error {
	var promotions []models.Promotion
	if err := p.db.Preload("Hotel").Find(&promotions).Error; err != nil {
		return middleware.Internal("Failed to fetch promotions", err)
	}
	if len(promotions) == 0 {
		return middleware.NotFound("No promotions found")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Promotions fetched successfully", promotions)
}

func (p *PromotionController) GetPromotionById(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var promotion models.Promotion
	if err := p.db.Preload("Hotel").First(&promotion, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("Promotion not found")
		}
		return middleware.Internal("Failed to fetch promotion", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Promotion fetched successfully", promotion)
}

func (p *PromotionController) CreatePromotion(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return err
	}
	if err := validators.PromotionSchema.ValidateCreate(body); err != nil {
		return err
	}

	hotelID := uintField(body, "hotel_id")
	promotionType := strField(body, "promotion_type")
	startDate := dateField(body, "start_date")
	endDate := dateField(body, "end_date")

	if startDate.After(endDate) {
		return middleware.BadRequest("Start date cannot be after end date")
	}

	var hotel models.Hotel
	if err := p.db.First(&hotel, hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("Hotel not found")
		}
		return middleware.Internal("Failed to create promotion", err)
	}

	if err := p.checkConflict(hotelID, promotionType, startDate, endDate, 0); err != nil {
		return err
	}

	promotion := models.Promotion{
		HotelID:            hotelID,
		PromotionType:      promotionType,
		DiscountPercentage: numField(body, "discount_percentage"),
		StartDate:          startDate,
		EndDate:            endDate,
	}
	if err := p.db.Create(&promotion).Error; err != nil {
		return middleware.Internal("Failed to create promotion", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Promotion created successfully", promotion)
}

func (p *PromotionController) UpdatePromotion(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	body, err := parseBody(c)
	if err != nil {
		return err
	}
	if err := validators.PromotionSchema.ValidateUpdate(body); err != nil {
		return err
	}

	var promotion models.Promotion
	if err := p.db.First(&promotion, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("Promotion not found")
		}
		return middleware.Internal("Failed to update promotion", err)
	}

	if has(body, "promotion_type") {
		promotion.PromotionType = strField(body, "promotion_type")
	}
	if has(body, "discount_percentage") {
		promotion.DiscountPercentage = numField(body, "discount_percentage")
	}
	if has(body, "start_date") {
		promotion.StartDate = dateField(body, "start_date")
	}
	if has(body, "end_date") {
		promotion.EndDate = dateField(body, "end_date")
	}

	if promotion.StartDate.After(promotion.EndDate) {
		return middleware.BadRequest("Start date cannot be after end date")
	}

	err = p.checkConflict(promotion.HotelID, promotion.PromotionType, promotion.StartDate, promotion.EndDate, promotion.ID)
	if err != nil {
		return err
	}

	if err := p.db.Save(&promotion).Error; err != nil {
		return middleware.Internal("Failed to update promotion", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Promotion updated successfully", promotion)
}

func (p *PromotionController) DeletePromotion(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var promotion models.Promotion
	if err := p.db.First(&promotion, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("Promotion not found")
		}
		return middleware.Internal("Failed to delete promotion", err)
	}

	if err := p.db.Delete(&promotion).Error; err != nil {
		return middleware.Internal("Failed to delete promotion", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Promotion deleted successfully", nil)
}

// checkConflict rejects a duplicate (hotel, type, start, end) tuple,
// excluding the row itself when excludeID is non-zero.
func (p *PromotionController) checkConflict(hotelID uint, promotionType string, startDate, endDate time.Time, excludeID uint) error {
	query := p.db.Where(
		"hotel_id = ? AND promotion_type = ? AND start_date = ? AND end_date = ?",
		hotelID, promotionType, startDate, endDate,
	)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var existing models.Promotion
	err := query.First(&existing).Error
	if err == nil {
		return middleware.Conflict("Promotion already exists with this hotel_id, promotion_type, start_date, and end_date")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.Internal("Failed to check promotion", err)
	}
	return nil
}
