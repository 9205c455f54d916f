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

type ReservationController struct {
	db *gorm.DB
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{db: db}
}

func (r *ReservationController) GetAllReservations(c *fiber.Ctx) error {
	var reservations []models.Reservation
	err := r.db.
		Preload("Room").
		Preload("Services").
		Preload("PaymentRecords").
		Find(&reservations).Error
	if err != nil {
		return middleware.Internal("Failed to fetch reservations", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reservations fetched successfully", reservations)
}

func (r *ReservationController) CreateReservation(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return err
	}
	if err := validators.ReservationSchema.ValidateCreate(body); err != nil {
		return err
	}

	userID := uintField(body, "user_id")
	roomID := uintField(body, "room_id")
	checkIn := dateField(body, "check_in_date")
	checkOut := dateField(body, "check_out_date")
	status := strField(body, "status")

	var user models.User
	if err := r.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("User not found")
		}
		return middleware.Internal("Failed to create reservation", err)
	}

	var room models.Room
	if err := r.db.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("Room not found")
		}
		return middleware.Internal("Failed to create reservation", err)
	}

	if err := r.checkConflict(userID, roomID, checkIn, checkOut, status, 0); err != nil {
		return err
	}

	reservation := models.Reservation{
		UserID:       userID,
		RoomID:       roomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       status,
	}
	if err := r.db.Create(&reservation).Error; err != nil {
		return middleware.Internal("Failed to create reservation", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Reservation created successfully", reservation)
}

func (r *ReservationController) UpdateReservation(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	body, err := parseBody(c)
	if err != nil {
		return err
	}
	if err := validators.ReservationSchema.ValidateUpdate(body); err != nil {
		return err
	}

	var reservation models.Reservation
	if err := r.db.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("Reservation not found")
		}
		return middleware.Internal("Failed to update reservation", err)
	}

	if has(body, "user_id") {
		userID := uintField(body, "user_id")
		var user models.User
		if err := r.db.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return middleware.NotFound("User not found")
			}
			return middleware.Internal("Failed to update reservation", err)
		}
		reservation.UserID = userID
	}
	if has(body, "room_id") {
		roomID := uintField(body, "room_id")
		var room models.Room
		if err := r.db.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return middleware.NotFound("Room not found")
			}
			return middleware.Internal("Failed to update reservation", err)
		}
		reservation.RoomID = roomID
	}
	if has(body, "check_in_date") {
		reservation.CheckInDate = dateField(body, "check_in_date")
	}
	if has(body, "check_out_date") {
		reservation.CheckOutDate = dateField(body, "check_out_date")
	}
	if has(body, "status") {
		reservation.Status = strField(body, "status")
	}

	// The merged record must not collide with another reservation.
	err = r.checkConflict(
		reservation.UserID, reservation.RoomID,
		reservation.CheckInDate, reservation.CheckOutDate,
		reservation.Status, reservation.ID,
	)
	if err != nil {
		return err
	}

	if err := r.db.Save(&reservation).Error; err != nil {
		return middleware.Internal("Failed to update reservation", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reservation updated successfully", reservation)
}

func (r *ReservationController) DeleteReservation(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var reservation models.Reservation
	if err := r.db.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("Reservation not found")
		}
		return middleware.Internal("Failed to delete reservation", err)
	}

	if err := r.db.Delete(&reservation).Error; err != nil {
		return middleware.Internal("Failed to delete reservation", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reservation deleted successfully", nil)
}

// checkConflict rejects a duplicate (user, room, dates, status) tuple,
// excluding the row itself when excludeID is non-zero.
func (r *ReservationController) checkConflict(userID, roomID uint, checkIn, checkOut time.Time, status string, excludeID uint) error {
	query := r.db.Where(
		"user_id = ? AND room_id = ? AND check_in_date = ? AND check_out_date = ? AND status = ?",
		userID, roomID, checkIn, checkOut, status,
	)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var existing models.Reservation
	err := query.First(&existing).Error
	if err == nil {
		return middleware.Conflict("A reservation already exists with the same details.")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.Internal("Failed to check reservation", err)
	}
	return nil
}
