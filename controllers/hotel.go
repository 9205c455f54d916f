package controllers

import (
	"errors"

	"hbs/middleware"
	"hbs/models"
	"hbs/validators"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HotelController struct {
	db *gorm.DB
}

func NewHotelController(db *gorm.DB) *HotelController {
	return &HotelController{db: db}
}

func (h *HotelController) GetAllHotels(c *fiber.Ctx) error {
	var hotels []models.Hotel
	if err := h.db.Preload("Rooms").Find(&hotels).Error; err != nil {
		return middleware.Internal("Failed to fetch hotels", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Hotels fetched successfully", hotels)
}

func (h *HotelController) CreateHotel(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return err
	}
	if err := validators.HotelSchema.ValidateCreate(body); err != nil {
		return err
	}

	name := strField(body, "name")

	var existing models.Hotel
	err = h.db.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return middleware.Conflict("Hotel with this name already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.Internal("Failed to create hotel", err)
	}

	hotel := models.Hotel{
		Name:        name,
		Location:    strField(body, "location"),
		Rating:      numField(body, "rating"),
		Description: strField(body, "description"),
	}
	if err := h.db.Create(&hotel).Error; err != nil {
		return middleware.Internal("Failed to create hotel", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Hotel created successfully", hotel)
}

func (h *HotelController) UpdateHotel(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	body, err := parseBody(c)
	if err != nil {
		return err
	}
	if err := validators.HotelSchema.ValidateUpdate(body); err != nil {
		return err
	}

	var hotel models.Hotel
	if err := h.db.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("Hotel not found")
		}
		return middleware.Internal("Failed to update hotel", err)
	}

	if has(body, "name") {
		hotel.Name = strField(body, "name")
	}
	if has(body, "location") {
		hotel.Location = strField(body, "location")
	}
	if has(body, "rating") {
		hotel.Rating = numField(body, "rating")
	}
	if has(body, "description") {
		hotel.Description = strField(body, "description")
	}

	if err := h.db.Save(&hotel).Error; err != nil {
		return middleware.Internal("Failed to update hotel", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Hotel updated successfully", hotel)
}

func (h *HotelController) DeleteHotel(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var hotel models.Hotel
	if err := h.db.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("Hotel not found")
		}
		return middleware.Internal("Failed to delete hotel", err)
	}

	if err := h.db.Delete(&hotel).Error; err != nil {
		return middleware.Internal("Failed to delete hotel", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Hotel deleted successfully", nil)
}
