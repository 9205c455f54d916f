package controllers

import (
	"errors"

	"hbs/middleware"
	"hbs/models"
	"hbs/validators"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RoomController struct {
	db *gorm.DB
}

func NewRoomController(db *gorm.DB) *RoomController {
	return &RoomController{db: db}
}

func (r *RoomController) GetAllRooms(c *fiber.Ctx) error {
	var rooms []models.Room
	if err := r.db.Preload("Hotel").Find(&rooms).Error; err != nil {
		return middleware.Internal("Failed to fetch rooms", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Rooms fetched successfully", rooms)
}

func (r *RoomController) CreateRoom(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return err
	}
	if err := validators.RoomSchema.ValidateCreate(body); err != nil {
		return err
	}

	hotelID := uintField(body, "hotel_id")
	roomNumber := intField(body, "roomNumber")

	var hotel models.Hotel
	if err := r.db.First(&hotel, hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("Hotel not found")
		}
		return middleware.Internal("Failed to create room", err)
	}

	var existing models.Room
	err = r.db.Where("hotel_id = ? AND room_number = ?", hotelID, roomNumber).First(&existing).Error
	if err == nil {
		return middleware.Conflict("Room with this number already exists in this hotel")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.Internal("Failed to create room", err)
	}

	room := models.Room{
		HotelID:      hotelID,
		RoomNumber:   roomNumber,
		RoomType:     strField(body, "room_type"),
		Price:        numField(body, "price"),
		Availability: boolField(body, "availability"),
	}
	if err := r.db.Create(&room).Error; err != nil {
		return middleware.Internal("Failed to create room", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Room created successfully", room)
}

func (r *RoomController) UpdateRoom(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	body, err := parseBody(c)
	if err != nil {
		return err
	}
	if err := validators.RoomSchema.ValidateUpdate(body); err != nil {
		return err
	}

	var room models.Room
	if err := r.db.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("Room not found")
		}
		return middleware.Internal("Failed to update room", err)
	}

	if has(body, "hotel_id") {
		hotelID := uintField(body, "hotel_id")
		var hotel models.Hotel
		if err := r.db.First(&hotel, hotelID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return middleware.NotFound("Hotel not found")
			}
			return middleware.Internal("Failed to update room", err)
		}
		room.HotelID = hotelID
	}
	if has(body, "roomNumber") {
		room.RoomNumber = intField(body, "roomNumber")
	}
	if has(body, "room_type") {
		room.RoomType = strField(body, "room_type")
	}
	if has(body, "price") {
		room.Price = numField(body, "price")
	}
	if has(body, "availability") {
		room.Availability = boolField(body, "availability")
	}

	if err := r.db.Save(&room).Error; err != nil {
		return middleware.Internal("Failed to update room", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Room updated successfully", room)
}

func (r *RoomController) DeleteRoom(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var room models.Room
	if err := r.db.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("Room not found")
		}
		return middleware.Internal("Failed to delete room", err)
	}

	if err := r.db.Delete(&room).Error; err != nil {
		return middleware.Internal("Failed to delete room", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Room deleted successfully", nil)
}
