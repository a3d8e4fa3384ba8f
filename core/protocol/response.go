package protocol

import (
	"github.com/gofiber/fiber/v2"
)

// Kind identifies one of the protocol's closed set of response variants.
type Kind int

const (
	KindSuccess Kind = iota
	KindSessionNotCreated
	KindUnknownCommand
	KindInvalidArgument
	KindInvalidSessionID
	KindUnableToCaptureScreen
	KindUnknownError
)

// statusCodes maps each variant to the HTTP status the protocol fixes for it.
var statusCodes = map[Kind]int{
	KindSuccess:               fiber.StatusOK,
	KindSessionNotCreated:     fiber.StatusInternalServerError,
	KindUnknownCommand:        fiber.StatusNotFound,
	KindInvalidArgument:       fiber.StatusBadRequest,
	KindInvalidSessionID:      fiber.StatusNotFound,
	KindUnableToCaptureScreen: fiber.StatusInternalServerError,
	KindUnknownError:          fiber.StatusInternalServerError,
}

// messages are the fixed wire payloads of the error variants. They are never
// parameterized; internal diagnostics stay server-side.
var messages = map[Kind]string{
	KindSessionNotCreated:     "session not created",
	KindUnknownCommand:        "unknown command",
	KindInvalidArgument:       "invalid argument",
	KindInvalidSessionID:      "invalid session id",
	KindUnableToCaptureScreen: "unable to capture screen",
	KindUnknownError:          "unknown error",
}

// Response pairs a wire payload with its HTTP status. Handlers never build
// these directly; the dispatcher resolves handler outcomes into them.
type Response struct {
	kind    Kind
	payload any
}

// Success wraps a caller-supplied payload in the 200 variant.
func Success(payload any) *Response {
	if payload == nil {
		payload = fiber.Map{}
	}
	return &Response{kind: KindSuccess, payload: payload}
}

// Kind returns the response variant.
func (r *Response) Kind() Kind {
	return r.kind
}

// Status returns the HTTP status code fixed for the variant.
func (r *Response) Status() int {
	return statusCodes[r.kind]
}

// Payload returns the value to be wrapped in the wire envelope.
func (r *Response) Payload() any {
	return r.payload
}

// Error is an expected protocol outcome signalled by a handler or backend
// through the error return. Anything that is not a *Error is treated as an
// internal fault and reported as UnknownError.
type Error struct {
	kind Kind
}

// Sentinel errors for every non-success variant a handler may signal.
var (
	ErrSessionNotCreated     = &Error{kind: KindSessionNotCreated}
	ErrUnknownCommand        = &Error{kind: KindUnknownCommand}
	ErrInvalidArgument       = &Error{kind: KindInvalidArgument}
	ErrInvalidSessionID      = &Error{kind: KindInvalidSessionID}
	ErrUnableToCaptureScreen = &Error{kind: KindUnableToCaptureScreen}
	ErrUnknownError          = &Error{kind: KindUnknownError}
)

// Error implements the error interface.
func (e *Error) Error() string {
	return messages[e.kind]
}

// Kind returns the variant this error selects.
func (e *Error) Kind() Kind {
	return e.kind
}

// Response returns the fixed response for this error.
func (e *Error) Response() *Response {
	return &Response{kind: e.kind, payload: fiber.Map{"error": messages[e.kind]}}
}
