package controllers_test

import (
	"testing"

	"hbs/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
	"gorm.io/gorm"
)

func seedReview(t *testing.T, db *gorm.DB, userID, hotelID uint) models.Review {
	t.Helper()
	review := models.Review{UserID: userID, HotelID: hotelID, Rating: 4, Comment: "nice stay", ReviewDate: date(t, "2024-01-01")}
	assert.NoError(t, db.Create(&review).Error)
	return review
}

func TestCreateReview(t *testing.T) {
	app, db := newTestApp(t)
	hotel := seedHotel(t, db, "Plaza")
	user := seedUser(t, db, "alice@example.com")

	status, body := doRequest(t, app, fiber.MethodPost, "/api/v1/reviews/create", fiber.Map{
		"user_id":     user.ID,
		"hotel_id":    hotel.ID,
		"rating":      4.0,
		"comment":     "great",
		"review_date": "2024-01-01",
	})

	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, 4.0, gjson.Get(body, "data.rating").Float())
}

func TestCreateReviewRatingRangeBeforeExistence(t *testing.T) {
	app, _ := newTestApp(t)

	// Neither user 1 nor hotel 1 exists; the range violation must win
	// because validation runs before any lookup.
	status, body := doRequest(t, app, fiber.MethodPost, "/api/v1/reviews/create", fiber.Map{
		"user_id":     1,
		"hotel_id":    1,
		"rating":      7.0,
		"comment":     "x",
		"review_date": "2024-01-01",
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, gjson.Get(body, "message").String(), "rating must be between 0 and 5")
}

func TestCreateReviewZeroRatingReadsAsMissing(t *testing.T) {
	app, db := newTestApp(t)
	hotel := seedHotel(t, db, "Plaza")
	user := seedUser(t, db, "alice@example.com")

	// Review fields use falsy presence, so a rating of 0 fails the
	// required check. Documented quirk, kept on purpose.
	status, body := doRequest(t, app, fiber.MethodPost, "/api/v1/reviews/create", fiber.Map{
		"user_id":     user.ID,
		"hotel_id":    hotel.ID,
		"rating":      0.0,
		"comment":     "meh",
		"review_date": "2024-01-01",
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, gjson.Get(body, "message").String(), "rating is required")
}

func TestCreateReviewDuplicatePair(t *testing.T) {
	app, db := newTestApp(t)
	hotel := seedHotel(t, db, "Plaza")
	user := seedUser(t, db, "alice@example.com")
	seedReview(t, db, user.ID, hotel.ID)

	status, body := doRequest(t, app, fiber.MethodPost, "/api/v1/reviews/create", fiber.Map{
		"user_id":     user.ID,
		"hotel_id":    hotel.ID,
		"rating":      2.0,
		"comment":     "again",
		"review_date": "2024-02-01",
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Review already exists for this user and hotel", gjson.Get(body, "message").String())
}

func TestGetAllReviewsEmptyIs404(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doRequest(t, app, fiber.MethodGet, "/api/v1/reviews/getAll", nil)

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "No reviews found", gjson.Get(body, "message").String())
}

func TestGetReviewById(t *testing.T) {
	app, db := newTestApp(t)
	hotel := seedHotel(t, db, "Plaza")
	user := seedUser(t, db, "alice@example.com")
	seedReview(t, db, user.ID, hotel.ID)

	status, body := doRequest(t, app, fiber.MethodGet, "/api/v1/reviews/get/1", nil)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "nice stay", gjson.Get(body, "data.comment").String())
	assert.Equal(t, "Plaza", gjson.Get(body, "data.hotel.name").String())
	assert.Equal(t, "alice@example.com", gjson.Get(body, "data.user.email").String())
}

func TestGetReviewByIdNonNumeric(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doRequest(t, app, fiber.MethodGet, "/api/v1/reviews/get/abc", nil)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid ID format", gjson.Get(body, "message").String())
}

func TestGetReviewByIdAbsent(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doRequest(t, app, fiber.MethodGet, "/api/v1/reviews/get/99", nil)

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Review not found", gjson.Get(body, "message").String())
}

func TestUpdateReviewRejectsForeignKeyChange(t *testing.T) {
	app, db := newTestApp(t)
	hotel := seedHotel(t, db, "Plaza")
	user := seedUser(t, db, "alice@example.com")
	seedReview(t, db, user.ID, hotel.ID)

	// user_id and hotel_id are create-only; on update they are unexpected.
	status, body := doRequest(t, app, fiber.MethodPatch, "/api/v1/reviews/update/1", fiber.Map{
		"user_id": 2,
		"rating":  3.0,
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, gjson.Get(body, "message").String(), "Unexpected fields provided: user_id")
}

func TestUpdateReviewPartial(t *testing.T) {
	app, db := newTestApp(t)
	hotel := seedHotel(t, db, "Plaza")
	user := seedUser(t, db, "alice@example.com")
	review := seedReview(t, db, user.ID, hotel.ID)

	status, body := doRequest(t, app, fiber.MethodPatch, "/api/v1/reviews/update/1", fiber.Map{
		"rating": 2.0,
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 2.0, gjson.Get(body, "data.rating").Float())
	assert.Equal(t, review.Comment, gjson.Get(body, "data.comment").String())
}
