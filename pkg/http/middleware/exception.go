package middleware

import (
	"runtime/debug"

	"github.com/go-savor/savor/pkg/http"
	"github.com/go-savor/savor/pkg/log"
	"github.com/gofiber/fiber/v2"
)

// ExceptionMiddleware recovers from handler panics and answers with a 500-style
// envelope instead of tearing the connection down.
// This function is used as the middleware of fiber.
func ExceptionMiddleware(c *fiber.Ctx) error {
	defer func() {
		if err := recover(); err != nil {
			_ = http.WithRepErr(c, http.InternalError.Code, errorToString(err), c.Path())
			log.Errorf("panic: %v", err)
		}
	}()

	return c.Next()
}

func errorToString(err any) string {
	switch v := err.(type) {
	case error:
		// never leak stack traces to the client
		log.Errorf("panic: %v\n%s", v, debug.Stack())
		return http.InternalError.Msg
	case string:
		return v
	default:
		return http.InternalError.Msg
	}
}
