package protocol_test

import (
	"testing"

	"github.com/cashpipeplusplus/generic-webdriver-server/core/protocol"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    *protocol.Error
		status int
	}{
		{"SessionNotCreated", protocol.ErrSessionNotCreated, 500},
		{"UnknownCommand", protocol.ErrUnknownCommand, 404},
		{"InvalidArgument", protocol.ErrInvalidArgument, 400},
		{"InvalidSessionID", protocol.ErrInvalidSessionID, 404},
		{"UnableToCaptureScreen", protocol.ErrUnableToCaptureScreen, 500},
		{"UnknownError", protocol.ErrUnknownError, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := tt.err.Response()
			assert.Equal(t, tt.status, resp.Status())
			assert.Equal(t, fiber.Map{"error": tt.err.Error()}, resp.Payload())
		})
	}
}

func TestSuccess(t *testing.T) {
	resp := protocol.Success(fiber.Map{"sessionId": "abc"})
	assert.Equal(t, 200, resp.Status())
	assert.Equal(t, protocol.KindSuccess, resp.Kind())
	assert.Equal(t, fiber.Map{"sessionId": "abc"}, resp.Payload())
}

func TestSuccess_NilPayloadBecomesEmptyObject(t *testing.T) {
	resp := protocol.Success(nil)
	assert.Equal(t, fiber.Map{}, resp.Payload())
}

func TestErrorMessagesAreFixed(t *testing.T) {
	// The wire payloads are never parameterized with internal detail.
	assert.Equal(t, "session not created", protocol.ErrSessionNotCreated.Error())
	assert.Equal(t, "unknown command", protocol.ErrUnknownCommand.Error())
	assert.Equal(t, "invalid argument", protocol.ErrInvalidArgument.Error())
	assert.Equal(t, "invalid session id", protocol.ErrInvalidSessionID.Error())
	assert.Equal(t, "unable to capture screen", protocol.ErrUnableToCaptureScreen.Error())
	assert.Equal(t, "unknown error", protocol.ErrUnknownError.Error())
}
