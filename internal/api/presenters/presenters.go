package presenters

import "github.com/gofiber/fiber/v2"

func SuccessResponse(c *fiber.Ctx, data any, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	return ErrorResponseWithData(c, code, message, err, nil)
}

// ErrorResponseWithData carries partial results alongside the error, for
// failures where the caller still needs something back (an upload whose
// extraction failed keeps its committed document id this way).
func ErrorResponseWithData(c *fiber.Ctx, code int, message string, err error, data any) error {
	body := fiber.Map{
		"status":  "error",
		"message": message,
	}
	if err != nil {
		body["error"] = err.Error()
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(code).JSON(body)
}
