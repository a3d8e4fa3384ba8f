// Package rayid tags every request with a correlation id.
//
// The id is stored in the request locals under "ray_id" and echoed in the
// X-Ray-Id response header. logger.WithRayID picks it up so every log line
// for one protocol command carries the same id.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// LocalsKey is the fiber locals key holding the correlation id.
	LocalsKey = "ray_id"
	// HeaderName is the response header echoing the correlation id.
	HeaderName = "X-Ray-Id"
)

// New returns a middleware that assigns a ray id to each request. An id
// supplied by the client in X-Ray-Id is kept, so upstream proxies can thread
// their own correlation through.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
