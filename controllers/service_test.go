package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestCreateService(t *testing.T) {
	app, db := newTestApp(t)
	hotel := seedHotel(t, db, "Plaza")

	status, body := doRequest(t, app, fiber.MethodPost, "/api/v1/services/create", fiber.Map{
		"hotel_id":     hotel.ID,
		"service_type": "spa",
		"price":        45.0,
	})

	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "spa", gjson.Get(body, "data.service_type").String())
}

func TestCreateServiceHotelNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doRequest(t, app, fiber.MethodPost, "/api/v1/services/create", fiber.Map{
		"hotel_id":     42,
		"service_type": "spa",
		"price":        45.0,
	})

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Hotel not found", gjson.Get(body, "message").String())
}

func TestGetAllServicesEmptyIs200(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doRequest(t, app, fiber.MethodGet, "/api/v1/services/getAll", nil)

	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, gjson.Get(body, "success").Bool())
}

func TestUpdateServiceIdenticalDataRejected(t *testing.T) {
	app, db := newTestApp(t)
	hotel := seedHotel(t, db, "Plaza")
	seedService(t, db, hotel.ID)

	status, body := doRequest(t, app, fiber.MethodPatch, "/api/v1/services/update/1", fiber.Map{
		"hotel_id":     hotel.ID,
		"service_type": "spa",
		"price":        45.0,
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "No changes detected: The service already has identical data", gjson.Get(body, "message").String())
}

func TestUpdateServicePartial(t *testing.T) {
	app, db := newTestApp(t)
	hotel := seedHotel(t, db, "Plaza")
	seedService(t, db, hotel.ID)

	status, body := doRequest(t, app, fiber.MethodPatch, "/api/v1/services/update/1", fiber.Map{
		"price": 60.0,
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 60.0, gjson.Get(body, "data.price").Float())
	assert.Equal(t, "spa", gjson.Get(body, "data.service_type").String())
}

func TestGetServiceById(t *testing.T) {
	app, db := newTestApp(t)
	hotel := seedHotel(t, db, "Plaza")
	seedService(t, db, hotel.ID)

	status, body := doRequest(t, app, fiber.MethodGet, "/api/v1/services/get/1", nil)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Plaza", gjson.Get(body, "data.hotel.name").String())
}
