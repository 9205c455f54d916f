package validators

import (
	"errors"
	"testing"
	"time"

	"hbs/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = &Schema{Fields: []Field{
	{Name: "name", Kind: String, Required: true},
	{Name: "rating", Kind: Number, Required: true, AllowZero: true, Min: limit(0), Max: limit(5)},
	{Name: "active", Kind: Bool, Required: true, AllowZero: true},
	{Name: "opened_on", Kind: Date},
	{Name: "owner_id", Kind: Number, Required: true, AllowZero: true, Immutable: true},
}}

func badRequestMessage(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	var apiErr *middleware.ApiError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, fiber.StatusBadRequest, apiErr.Status)
	return apiErr.Message
}

func TestValidateCreateAccepted(t *testing.T) {
	err := testSchema.ValidateCreate(map[string]interface{}{
		"name":      "Plaza",
		"rating":    4.5,
		"active":    true,
		"opened_on": "2024-01-15",
		"owner_id":  float64(3),
	})
	assert.NoError(t, err)
}

func TestValidateCreateMissingFields(t *testing.T) {
	err := testSchema.ValidateCreate(map[string]interface{}{
		"rating": 4.5,
	})
	msg := badRequestMessage(t, err)
	assert.Equal(t, "name is required, active is required, owner_id is required", msg)
}

func TestValidateCreateNullIsMissing(t *testing.T) {
	err := testSchema.ValidateCreate(map[string]interface{}{
		"name":     nil,
		"rating":   4.5,
		"active":   true,
		"owner_id": float64(3),
	})
	assert.Equal(t, "name is required", badRequestMessage(t, err))
}

func TestValidateCreateFalsyPresence(t *testing.T) {
	// Without AllowZero an empty string reads as missing; with it zero
	// values pass the presence check.
	err := testSchema.ValidateCreate(map[string]interface{}{
		"name":     "",
		"rating":   float64(0),
		"active":   false,
		"owner_id": float64(0),
	})
	assert.Equal(t, "name is required", badRequestMessage(t, err))
}

func TestValidateCreateTypeMismatch(t *testing.T) {
	err := testSchema.ValidateCreate(map[string]interface{}{
		"name":     float64(7),
		"rating":   "high",
		"active":   "yes",
		"owner_id": float64(3),
	})
	msg := badRequestMessage(t, err)
	assert.Equal(t, "name must be a string, rating must be a number, active must be a boolean", msg)
}

func TestValidateCreateRange(t *testing.T) {
	err := testSchema.ValidateCreate(map[string]interface{}{
		"name":     "Plaza",
		"rating":   7.5,
		"active":   true,
		"owner_id": float64(3),
	})
	assert.Equal(t, "rating must be a number between 0 and 5", badRequestMessage(t, err))
}

func TestValidateCreateExclusiveMin(t *testing.T) {
	schema := &Schema{Fields: []Field{
		{Name: "quantity", Kind: Number, Required: true, AllowZero: true, Min: limit(0), ExclusiveMin: true},
	}}
	err := schema.ValidateCreate(map[string]interface{}{"quantity": float64(0)})
	assert.Equal(t, "quantity must be greater than 0", badRequestMessage(t, err))

	assert.NoError(t, schema.ValidateCreate(map[string]interface{}{"quantity": float64(1)}))
}

func TestValidateCreateMessageOverride(t *testing.T) {
	schema := &Schema{Fields: []Field{
		{Name: "price", Kind: Number, Required: true, AllowZero: true, Min: limit(0), Message: "price must be a positive number"},
	}}
	err := schema.ValidateCreate(map[string]interface{}{"price": float64(-1)})
	assert.Equal(t, "price must be a positive number", badRequestMessage(t, err))
}

func TestValidateCreateUnexpectedFieldsSorted(t *testing.T) {
	err := testSchema.ValidateCreate(map[string]interface{}{
		"name":     "Plaza",
		"rating":   4.5,
		"active":   true,
		"owner_id": float64(3),
		"stars":    float64(5),
		"city":     "Oslo",
	})
	assert.Equal(t, "Unexpected fields provided: city, stars", badRequestMessage(t, err))
}

func TestValidateCreateBadDate(t *testing.T) {
	err := testSchema.ValidateCreate(map[string]interface{}{
		"name":      "Plaza",
		"rating":    4.5,
		"active":    true,
		"owner_id":  float64(3),
		"opened_on": "15/01/2024",
	})
	assert.Equal(t, "opened_on must be a valid date", badRequestMessage(t, err))
}

func TestValidateUpdatePartialPayload(t *testing.T) {
	assert.NoError(t, testSchema.ValidateUpdate(map[string]interface{}{"rating": 3.0}))
	assert.NoError(t, testSchema.ValidateUpdate(map[string]interface{}{}))
}

func TestValidateUpdateRejectsImmutable(t *testing.T) {
	err := testSchema.ValidateUpdate(map[string]interface{}{
		"owner_id": float64(9),
		"rating":   3.0,
	})
	assert.Equal(t, "Unexpected fields provided: owner_id", badRequestMessage(t, err))
}

func TestValidateUpdateChecksSuppliedValues(t *testing.T) {
	err := testSchema.ValidateUpdate(map[string]interface{}{"rating": -1.0})
	assert.Equal(t, "rating must be a number between 0 and 5", badRequestMessage(t, err))
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), parsed)

	parsed, err = ParseDate("2024-06-01T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, parsed.Hour())

	_, err = ParseDate("June 1st")
	assert.Error(t, err)
}
