package controllers

import (
	"errors"

	"hbs/middleware"
	"hbs/models"
	"hbs/validators"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ServiceController struct {
	db *gorm.DB
}

func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{db: db}
}

func (s *ServiceController) GetAllServices(c *fiber.Ctx) error {
	var services []models.Service
	if err := s.db.Preload("Hotel").Find(&services).Error; err != nil {
		return middleware.Internal("Failed to fetch services", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Services fetched successfully", services)
}

func (s *ServiceController) GetServiceById(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var service models.Service
	if err := s.db.Preload("Hotel").First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("Service not found")
		}
		return middleware.Internal("Failed to fetch service", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Service fetched successfully", service)
}

func (s *ServiceController) CreateService(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return err
	}
	if err := validators.ServiceSchema.ValidateCreate(body); err != nil {
		return err
	}

	hotelID := uintField(body, "hotel_id")

	var hotel models.Hotel
	if err := s.db.First(&hotel, hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("Hotel not found")
		}
		return middleware.Internal("Failed to create service", err)
	}

	service := models.Service{
		HotelID:     hotelID,
		ServiceType: strField(body, "service_type"),
		Price:       numField(body, "price"),
	}
	if err := s.db.Create(&service).Error; err != nil {
		return middleware.Internal("Failed to create service", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Service created successfully", service)
}

func (s *ServiceController) UpdateService(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	body, err := parseBody(c)
	if err != nil {
		return err
	}
	if err := validators.ServiceSchema.ValidateUpdate(body); err != nil {
		return err
	}

	var service models.Service
	if err := s.db.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("Service not found")
		}
		return middleware.Internal("Failed to update service", err)
	}

	// A full payload identical to the stored row is rejected as a no-op.
	if has(body, "hotel_id") && has(body, "service_type") && has(body, "price") &&
		uintField(body, "hotel_id") == service.HotelID &&
		strField(body, "service_type") == service.ServiceType &&
		numField(body, "price") == service.Price {
		return middleware.BadRequest("No changes detected: The service already has identical data")
	}

	if has(body, "hotel_id") {
		hotelID := uintField(body, "hotel_id")
		var hotel models.Hotel
		if err := s.db.First(&hotel, hotelID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return middleware.NotFound("Hotel not found")
			}
			return middleware.Internal("Failed to update service", err)
		}
		service.HotelID = hotelID
	}
	if has(body, "service_type") {
		service.ServiceType = strField(body, "service_type")
	}
	if has(body, "price") {
		service.Price = numField(body, "price")
	}

	if err := s.db.Save(&service).Error; err != nil {
		return middleware.Internal("Failed to update service", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Service updated successfully", service)
}

func (s *ServiceController) DeleteService(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var service models.Service
	if err := s.db.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("Service not found")
		}
		return middleware.Internal("Failed to delete service", err)
	}

	if err := s.db.Delete(&service).Error; err != nil {
		return middleware.Internal("Failed to delete service", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Service deleted successfully", nil)
}
