package controllers

import (
	"errors"

	"hbs/middleware"
	"hbs/models"
	"hbs/validators"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ServiceReservationController struct {
	db *gorm.DB
}

func NewServiceReservationController(db *gorm.DB) *ServiceReservationController {
	return &ServiceReservationController{db: db}
}

func (s *ServiceReservationController) GetAllServiceReservations(c *fiber.Ctx) error {
	var serviceReservations []models.ServiceReservation
	err := s.db.Preload("Reservation").Preload("Service").Find(&serviceReservations).Error
	if err != nil {
		return middleware.Internal("Failed to fetch service reservations", err)
	}
	if len(serviceReservations) == 0 {
		return middleware.NotFound("No service reservations found")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Service reservations fetched successfully", serviceReservations)
}

func (s *ServiceReservationController) GetServiceReservationById(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var serviceReservation models.ServiceReservation
	err = s.db.Preload("Reservation").Preload("Service").First(&serviceReservation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("Service reservation not found")
		}
		return middleware.Internal("Failed to fetch service reservation", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Service reservation fetched successfully", serviceReservation)
}

func (s *ServiceReservationController) CreateServiceReservation(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return err
	}
	if err := validators.ServiceReservationSchema.ValidateCreate(body); err != nil {
		return err
	}

	reservationID := uintField(body, "reservation_id")
	serviceID := uintField(body, "service_id")

	var reservation models.Reservation
	if err := s.db.First(&reservation, reservationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("Reservation not found")
		}
		return middleware.Internal("Failed to create service reservation", err)
	}

	var service models.Service
	if err := s.db.First(&service, serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("Service not found")
		}
		return middleware.Internal("Failed to create service reservation", err)
	}

	if err := s.checkConflict(reservationID, serviceID, 0); err != nil {
		return err
	}

	serviceReservation := models.ServiceReservation{
		ReservationID: reservationID,
		ServiceID:     serviceID,
		Quantity:      intField(body, "quantity"),
		Price:         numField(body, "price"),
	}
	if err := s.db.Create(&serviceReservation).Error; err != nil {
		return middleware.Internal("Failed to create service reservation", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Service reservation created successfully", serviceReservation)
}

func (s *ServiceReservationController) UpdateServiceReservation(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	body, err := parseBody(c)
	if err != nil {
		return err
	}
	if err := validators.ServiceReservationSchema.ValidateUpdate(body); err != nil {
		return err
	}

	var serviceReservation models.ServiceReservation
	if err := s.db.First(&serviceReservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("Service reservation not found")
		}
		return middleware.Internal("Failed to update service reservation", err)
	}

	if has(body, "reservation_id") {
		reservationID := uintField(body, "reservation_id")
		var reservation models.Reservation
		if err := s.db.First(&reservation, reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return middleware.NotFound("Reservation not found")
			}
			return middleware.Internal("Failed to update service reservation", err)
		}
		serviceReservation.ReservationID = reservationID
	}
	if has(body, "service_id") {
		serviceID := uintField(body, "service_id")
		var service models.Service
		if err := s.db.First(&service, serviceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return middleware.NotFound("Service not found")
			}
			return middleware.Internal("Failed to update service reservation", err)
		}
		serviceReservation.ServiceID = serviceID
	}
	if has(body, "quantity") {
		serviceReservation.Quantity = intField(body, "quantity")
	}
	if has(body, "price") {
		serviceReservation.Price = numField(body, "price")
	}

	err = s.checkConflict(serviceReservation.ReservationID, serviceReservation.ServiceID, serviceReservation.ID)
	if err != nil {
		return err
	}

	if err := s.db.Save(&serviceReservation).Error; err != nil {
		return middleware.Internal("Failed to update service reservation", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Service reservation updated successfully", serviceReservation)
}

func (s *ServiceReservationController) DeleteServiceReservation(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var serviceReservation models.ServiceReservation
	if err := s.db.First(&serviceReservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("Service reservation not found")
		}
		return middleware.Internal("Failed to delete service reservation", err)
	}

	if err := s.db.Delete(&serviceReservation).Error; err != nil {
		return middleware.Internal("Failed to delete service reservation", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Service reservation deleted successfully", nil)
}

// checkConflict enforces at most one row per (reservation, service) pair.
func (s *ServiceReservationController) checkConflict(reservationID, serviceID, excludeID uint) error {
	query := s.db.Where("reservation_id = ? AND service_id = ?", reservationID, serviceID)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var existing models.ServiceReservation
	err := query.First(&existing).Error
	if err == nil {
		return middleware.Conflict("Service reservation already exists with this reservation_id and service_id")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.Internal("Failed to check service reservation", err)
	}
	return nil
}
