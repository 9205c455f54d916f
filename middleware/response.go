package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// JsonResponse writes the uniform response envelope. The data key is omitted
// entirely when data is nil (delete responses carry no payload).
func JsonResponse(c *fiber.Ctx, statusCode int, success bool, message string, data interface{}) error {
	body := fiber.Map{
		"success": success,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(statusCode).JSON(body)
}
