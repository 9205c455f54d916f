package controllers

import (
	"errors"

	"hbs/middleware"
	"hbs/models"
	"hbs/validators"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RoomAmenityController struct {
	db *gorm.DB
}

func NewRoomAmenityController(db *gorm.DB) *RoomAmenityController {
	return &RoomAmenityController{db: db}
}

func (r *RoomAmenityController) GetAllRoomAmenities(c *fiber.Ctx) error {
	var roomAmenities []models.RoomAmenity
	if err := r.db.Preload("Room").Find(&roomAmenities).Error; err != nil {
		return middleware.Internal("Failed to fetch room amenities", err)
	}
	if len(roomAmenities) == 0 {
		return middleware.NotFound("No room amenities found")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Room amenities fetched successfully", roomAmenities)
}

func (r *RoomAmenityController) GetRoomAmenityById(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var roomAmenity models.RoomAmenity
	if err := r.db.Preload("Room").First(&roomAmenity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("Room amenity not found")
		}
		return middleware.Internal("Failed to fetch room amenity", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Room amenity fetched successfully", roomAmenity)
}

func (r *RoomAmenityController) CreateRoomAmenity(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return err
	}
	if err := validators.RoomAmenitySchema.ValidateCreate(body); err != nil {
		return err
	}

	roomID := uintField(body, "room_id")

	var room models.Room
	if err := r.db.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("Room not found")
		}
		return middleware.Internal("Failed to create room amenity", err)
	}

	roomAmenity := models.RoomAmenity{
		RoomID:      roomID,
		AmenityType: strField(body, "amenity_type"),
	}
	if err := r.db.Create(&roomAmenity).Error; err != nil {
		return middleware.Internal("Failed to create room amenity", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Room amenity created successfully", roomAmenity)
}

func (r *RoomAmenityController) UpdateRoomAmenity(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	body, err := parseBody(c)
	if err != nil {
		return err
	}
	if err := validators.RoomAmenitySchema.ValidateUpdate(body); err != nil {
		return err
	}

	var roomAmenity models.RoomAmenity
	if err := r.db.First(&roomAmenity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("Room amenity not found")
		}
		return middleware.Internal("Failed to update room amenity", err)
	}

	if has(body, "amenity_type") {
		roomAmenity.AmenityType = strField(body, "amenity_type")
	}

	if err := r.db.Save(&roomAmenity).Error; err != nil {
		return middleware.Internal("Failed to update room amenity", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Room amenity updated successfully", roomAmenity)
}

func (r *RoomAmenityController) DeleteRoomAmenity(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var roomAmenity models.RoomAmenity
	if err := r.db.First(&roomAmenity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("Room amenity not found")
		}
		return middleware.Internal("Failed to delete room amenity", err)
	}

	if err := r.db.Delete(&roomAmenity).Error; err != nil {
		return middleware.Internal("Failed to delete room amenity", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Room amenity deleted successfully", nil)
}
