package middleware

import (
	httpx "github.com/go-savor/savor/pkg/http"
	"github.com/gofiber/fiber/v2"
)

const (
	// DETAIL is the fiber.Ctx locals key a handler sets when the operation
	// produced data the client needs back, e.g. a listing or a created record.
	// e.g: c.Locals(DETAIL, value)
	DETAIL = "detail"

	// OPERATION is the locals key a handler sets when the operation succeeded
	// but has no data to return, e.g. update or delete.
	// e.g: c.Locals(OPERATION, "delete menu item")
	OPERATION = "operation"
)

// UnifiedResponseMiddleware wraps handler output in the standard envelope.
// Handlers either return an error response themselves or set DETAIL/OPERATION.
func UnifiedResponseMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err != nil {
			return err
		}

		if c.Response().StatusCode() == 0 {
			c.Status(fiber.StatusOK)
		}

		if c.Response().StatusCode() >= fiber.StatusOK && c.Response().StatusCode() < fiber.StatusMultipleChoices {
			if detail := c.Locals(DETAIL); detail != nil {
				return httpx.WithRepJSON(c, detail)
			}

			if c.Locals(OPERATION) != nil {
				return httpx.WithRepNotDetail(c)
			}
		}

		return nil
	}
}
