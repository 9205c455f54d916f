package controllers

import (
	"strconv"
	"time"

	"hbs/middleware"
	"hbs/validators"

	"github.com/gofiber/fiber/v2"
)

// parseID parses a path-supplied identifier. Non-numeric input fails
// immediately, before any payload or store work.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 0 {
		return 0, middleware.BadRequest("Invalid ID format")
	}
	return uint(id), nil
}

// parseBody decodes the request body into a raw map so validation can see
// missing, null and unexpected keys exactly as sent.
func parseBody(c *fiber.Ctx) (map[string]interface{}, error) {
	body := map[string]interface{}{}
	if err := c.BodyParser(&body); err != nil {
		return nil, middleware.BadRequest("Invalid request body!")
	}
	return body, nil
}

// has reports whether a field was supplied with a non-null value.
func has(body map[string]interface{}, key string) bool {
	v, ok := body[key]
	return ok && v != nil
}

func strField(body map[string]interface{}, key string) string {
	s, _ := body[key].(string)
	return s
}

func numField(body map[string]interface{}, key string) float64 {
	n, _ := body[key].(float64)
	return n
}

func uintField(body map[string]interface{}, key string) uint {
	return uint(numField(body, key))
}

func intField(body map[string]interface{}, key string) int {
	return int(numField(body, key))
}

func boolField(body map[string]interface{}, key string) bool {
	b, _ := body[key].(bool)
	return b
}

// dateField returns the parsed date for a field the schema already checked.
func dateField(body map[string]interface{}, key string) time.Time {
	t, _ := validators.ParseDate(strField(body, key))
	return t
}
