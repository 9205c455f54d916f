package controllers

import (
	"errors"

	"hbs/middleware"
	"hbs/models"
	"hbs/validators"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ReviewController struct {
	db *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{db: db}
}

// GetAllReviews reports 404 on an empty result set rather than an empty
// list; that is the documented behavior for this entity.
func (r *ReviewController) GetAllReviews(c *fiber.Ctx) error {
	var reviews []models.Review
	if err := r.db.Preload("User").Preload("Hotel").Find(&reviews).Error; err != nil {
		return middleware.Internal("Failed to fetch reviews", err)
	}
	if len(reviews) == 0 {
		return middleware.NotFound("No reviews found")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully", reviews)
}

func (r *ReviewController) GetReviewById(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var review models.Review
	err = r.db.Preload("User").Preload("Hotel").First(&review, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("Review not found")
		}
		return middleware.Internal("Failed to fetch review", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review fetched successfully", review)
}

func (r *ReviewController) CreateReview(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return err
	}
	if err := validators.ReviewSchema.ValidateCreate(body); err != nil {
		return err
	}

	userID := uintField(body, "user_id")
	hotelID := uintField(body, "hotel_id")

	var user models.User
	if err := r.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("User not found")
		}
		return middleware.Internal("Failed to create review", err)
	}

	var hotel models.Hotel
	if err := r.db.First(&hotel, hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("Hotel not found")
		}
		return middleware.Internal("Failed to create review", err)
	}

	var existing models.Review
	err = r.db.Where("user_id = ? AND hotel_id = ?", userID, hotelID).First(&existing).Error
	if err == nil {
		return middleware.Conflict("Review already exists for this user and hotel")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.Internal("Failed to create review", err)
	}

	review := models.Review{
		UserID:     userID,
		HotelID:    hotelID,
		Rating:     numField(body, "rating"),
		Comment:    strField(body, "comment"),
		ReviewDate: dateField(body, "review_date"),
	}
	if err := r.db.Create(&review).Error; err != nil {
		return middleware.Internal("Failed to create review", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review created successfully", review)
}

func (r *ReviewController) UpdateReview(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	body, err := parseBody(c)
	if err != nil {
		return err
	}
	if err := validators.ReviewSchema.ValidateUpdate(body); err != nil {
		return err
	}

	var review models.Review
	if err := r.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("Review not found")
		}
		return middleware.Internal("Failed to update review", err)
	}

	if has(body, "rating") {
		review.Rating = numField(body, "rating")
	}
	if has(body, "comment") {
		review.Comment = strField(body, "comment")
	}
	if has(body, "review_date") {
		review.ReviewDate = dateField(body, "review_date")
	}

	if err := r.db.Save(&review).Error; err != nil {
		return middleware.Internal("Failed to update review", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review updated successfully", review)
}

func (r *ReviewController) DeleteReview(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var review models.Review
	if err := r.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.NotFound("Review not found")
		}
		return middleware.Internal("Failed to delete review", err)
	}

	if err := r.db.Delete(&review).Error; err != nil {
		return middleware.Internal("Failed to delete review", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review deleted successfully", nil)
}
