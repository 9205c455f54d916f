package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hbs/database"
	"hbs/middleware"
	"hbs/models"
	"hbs/routers"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestApp builds a fiber app wired to a fresh in-memory database. Each
// test gets its own shared-cache DSN so parallel tests stay isolated.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})
	routers.SetupRoutes(app, db)

	return app, db
}

func doRequest(t *testing.T, app *fiber.App, method, path string, payload interface{}) (int, string) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(raw)
}

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func seedHotel(t *testing.T, db *gorm.DB, name string) models.Hotel {
	t.Helper()
	hotel := models.Hotel{Name: name, Location: "NYC", Rating: 4.5, Description: "flagship property"}
	require.NoError(t, db.Create(&hotel).Error)
	return hotel
}

func seedRoom(t *testing.T, db *gorm.DB, hotelID uint, number int) models.Room {
	t.Helper()
	room := models.Room{HotelID: hotelID, RoomNumber: number, RoomType: "double", Price: 120, Availability: true}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{Name: "Alice Smith", Email: email, Password: "secret123", Phone: "1234567890"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedReservation(t *testing.T, db *gorm.DB, userID, roomID uint) models.Reservation {
	t.Helper()
	reservation := models.Reservation{
		UserID:       userID,
		RoomID:       roomID,
		CheckInDate:  date(t, "2024-03-01"),
		CheckOutDate: date(t, "2024-03-05"),
		Status:       "CONFIRMED",
	}
	require.NoError(t, db.Create(&reservation).Error)
	return reservation
}

func seedService(t *testing.T, db *gorm.DB, hotelID uint) models.Service {
	t.Helper()
	service := models.Service{HotelID: hotelID, ServiceType: "spa", Price: 45}
	require.NoError(t, db.Create(&service).Error)
	return service
}
