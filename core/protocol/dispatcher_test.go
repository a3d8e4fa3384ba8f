package protocol_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cashpipeplusplus/generic-webdriver-server/core/protocol"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupDispatcher(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	d := protocol.NewDispatcher(app, zap.NewNop())

	d.Register(fiber.MethodGet, "/echo/:id", func(ctx context.Context, req *protocol.Request) (any, error) {
		return fiber.Map{"id": req.Param("id")}, nil
	})
	d.Register(fiber.MethodPost, "/body", func(ctx context.Context, req *protocol.Request) (any, error) {
		var parsed map[string]any
		require.NoError(t, json.Unmarshal(req.Body, &parsed))
		return parsed, nil
	})
	d.Register(fiber.MethodGet, "/denied", func(ctx context.Context, req *protocol.Request) (any, error) {
		return nil, protocol.ErrInvalidSessionID
	})
	d.Register(fiber.MethodGet, "/boom", func(ctx context.Context, req *protocol.Request) (any, error) {
		return nil, errors.New("backend exploded: secret detail")
	})
	d.Register(fiber.MethodGet, "/nil", func(ctx context.Context, req *protocol.Request) (any, error) {
		return nil, nil
	})
	d.CatchAll()

	return app
}

func request(t *testing.T, app *fiber.App, method, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func TestDispatch_WrapsPayloadInValueEnvelope(t *testing.T) {
	app := setupDispatcher(t)

	status, body := request(t, app, "GET", "/echo/ab12", "")
	assert.Equal(t, 200, status)
	assert.JSONEq(t, `{"value":{"id":"ab12"}}`, body)
}

func TestDispatch_PassesParsedBody(t *testing.T) {
	app := setupDispatcher(t)

	status, body := request(t, app, "POST", "/body", `{"url":"http://example.com"}`)
	assert.Equal(t, 200, status)
	assert.JSONEq(t, `{"value":{"url":"http://example.com"}}`, body)
}

func TestDispatch_ProtocolErrorKeepsItsVariant(t *testing.T) {
	app := setupDispatcher(t)

	status, body := request(t, app, "GET", "/denied", "")
	assert.Equal(t, 404, status)
	assert.JSONEq(t, `{"value":{"error":"invalid session id"}}`, body)
}

func TestDispatch_InternalErrorIsNotLeaked(t *testing.T) {
	app := setupDispatcher(t)

	status, body := request(t, app, "GET", "/boom", "")
	assert.Equal(t, 500, status)
	assert.JSONEq(t, `{"value":{"error":"unknown error"}}`, body)
	assert.NotContains(t, body, "secret detail")
}

func TestDispatch_NilPayloadIsEmptyObject(t *testing.T) {
	app := setupDispatcher(t)

	status, body := request(t, app, "GET", "/nil", "")
	assert.Equal(t, 200, status)
	assert.JSONEq(t, `{"value":{}}`, body)
}

func TestDispatch_CatchAllYieldsUnknownCommand(t *testing.T) {
	app := setupDispatcher(t)

	cases := []struct {
		method string
		path   string
	}{
		{"GET", "/nope"},
		{"POST", "/echo/ab12"},
		{"DELETE", "/denied"},
		{"PATCH", "/"},
	}
	for _, tc := range cases {
		status, body := request(t, app, tc.method, tc.path, "")
		assert.Equal(t, 404, status, "%s %s", tc.method, tc.path)
		assert.JSONEq(t, `{"value":{"error":"unknown command"}}`, body)
	}
}
