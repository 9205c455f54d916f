package controllers

import (
	"errors"

	"hbs/middleware"
	"hbs/models"
	"hbs/validators"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PaymentRecordController struct {
	db *gorm.DB
}

func NewPaymentRecordController(db *gorm.DB) *PaymentRecordController {
	return &PaymentRecordController{db: db}
}

func (p *PaymentRecordController) GetAllPaymentRecords(c *fiber.Ctx) error {
	var paymentRecords []models.PaymentRecord
	if err := p.db.Preload("Reservation").Find(&paymentRecords).Error; err != nil {
		return middleware.Internal("Failed to fetch payment records", err)
	}
	if len(paymentRecords) == 0 {
		return middleware.NotFound("No payment records found")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment records fetched successfully", paymentRecords)
}

func (p *PaymentRecordController) GetPaymentRecordById(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var paymentRecord models.PaymentRecord
	if err := p.db.Preload("Reservation").First(&paymentRecord, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("Payment record not found")
		}
		return middleware.Internal("Failed to fetch payment record", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment record fetched successfully", paymentRecord)
}

func (p *PaymentRecordController) CreatePaymentRecord(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return err
	}
	if err := validators.PaymentRecordSchema.ValidateCreate(body); err != nil {
		return err
	}

	reservationID := uintField(body, "reservation_id")

	var reservation models.Reservation
	if err := p.db.First(&reservation, reservationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("Reservation not found")
		}
		return middleware.Internal("Failed to create payment record", err)
	}

	paymentRecord := models.PaymentRecord{
		ReservationID: reservationID,
		Amount:        numField(body, "amount"),
		PaymentDate:   dateField(body, "payment_date"),
		PaymentMethod: strField(body, "payment_method"),
	}
	if err := p.db.Create(&paymentRecord).Error; err != nil {
		return middleware.Internal("Failed to create payment record", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Payment record created successfully", paymentRecord)
}

func (p *PaymentRecordController) UpdatePaymentRecord(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	body, err := parseBody(c)
	if err != nil {
		return err
	}
	if err := validators.PaymentRecordSchema.ValidateUpdate(body); err != nil {
		return err
	}

	var paymentRecord models.PaymentRecord
	if err := p.db.First(&paymentRecord, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("Payment record not found")
		}
		return middleware.Internal("Failed to update payment record", err)
	}

	if has(body, "amount") {
		paymentRecord.Amount = numField(body, "amount")
	}
	if has(body, "payment_date") {
		paymentRecord.PaymentDate = dateField(body, "payment_date")
	}
	if has(body, "payment_method") {
		paymentRecord.PaymentMethod = strField(body, "payment_method")
	}

	if err := p.db.Save(&paymentRecord).Error; err != nil {
		return middleware.Internal("Failed to update payment record", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment record updated successfully", paymentRecord)
}

func (p *PaymentRecordController) DeletePaymentRecord(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var paymentRecord models.PaymentRecord
	if err := p.db.First(&paymentRecord, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("Payment record not found")
		}
		return middleware.Internal("Failed to delete payment record", err)
	}

	if err := p.db.Delete(&paymentRecord).Error; err != nil {
		return middleware.Internal("Failed to delete payment record", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment record deleted successfully", nil)
}
