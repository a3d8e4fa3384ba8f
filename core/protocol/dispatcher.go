package protocol

import (
	"context"
	"errors"

	"github.com/cashpipeplusplus/generic-webdriver-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Request carries the pieces of an HTTP request a protocol handler may see:
// named path parameters and the raw JSON body.
type Request struct {
	Params map[string]string
	Body   []byte
}

// Param returns the named path parameter, or "" if the route has none.
func (r *Request) Param(name string) string {
	return r.Params[name]
}

// Handler implements one protocol operation. A nil error wraps the payload in
// the Success variant; a *Error selects its fixed variant; any other error is
// logged server-side and reported to the client as UnknownError.
type Handler func(ctx context.Context, req *Request) (any, error)

// Dispatcher registers protocol routes on a Fiber router and shapes every
// handler outcome into the {"value": ...} wire envelope with the variant's
// status code. No handler outcome escapes it.
type Dispatcher struct {
	router fiber.Router
	logger *zap.Logger
}

// NewDispatcher creates a dispatcher registering routes on the given router.
func NewDispatcher(router fiber.Router, log *zap.Logger) *Dispatcher {
	return &Dispatcher{router: router, logger: log}
}

// Register binds a handler to an HTTP method and path pattern. Routes are
// registered once at startup and are immutable afterward.
func (d *Dispatcher) Register(method, path string, h Handler) {
	d.router.Add(method, path, d.wrap(h))
}

// CatchAll answers every request no registered route claimed with
// UnknownCommand. It must be registered after all protocol routes.
func (d *Dispatcher) CatchAll() {
	d.router.All("/*", func(c *fiber.Ctx) error {
		l := logger.WithRayID(d.logger, c)
		l.Warn("Unknown command",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
		)
		return write(c, ErrUnknownCommand.Response())
	})
}

func (d *Dispatcher) wrap(h Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(d.logger, c)
		l.Info("Dispatching command",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.ByteString("body", c.Body()),
		)

		req := &Request{Params: c.AllParams(), Body: c.Body()}
		payload, err := h(c.Context(), req)
		return write(c, d.resolve(l, payload, err))
	}
}

// resolve turns a handler outcome into a Response. Expected protocol errors
// keep their fixed variant; anything else is an internal fault that is logged
// with full detail and reported only as the generic UnknownError.
func (d *Dispatcher) resolve(l *zap.Logger, payload any, err error) *Response {
	if err == nil {
		return Success(payload)
	}

	var perr *Error
	if errors.As(err, &perr) {
		return perr.Response()
	}

	l.Error("Command failed", zap.Error(err))
	return ErrUnknownError.Response()
}

func write(c *fiber.Ctx, resp *Response) error {
	return c.Status(resp.Status()).JSON(fiber.Map{"value": resp.Payload()})
}
