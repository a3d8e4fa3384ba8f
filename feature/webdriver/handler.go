package webdriver

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"github.com/cashpipeplusplus/generic-webdriver-server/core/protocol"

	"github.com/gofiber/fiber/v2"
)

// Handler registers the protocol endpoints through the dispatcher.
type Handler struct {
	service *Service
}

// NewHandler creates a new protocol handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers every protocol route plus the unknown-command
// catch-all, which must come last.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	d := protocol.NewDispatcher(app, h.service.logger)
	d.Register(fiber.MethodGet, "/status", h.HandleStatus)
	d.Register(fiber.MethodGet, "/shutdown", h.HandleShutdown)
	d.Register(fiber.MethodPost, "/session", h.HandleCreateSession)
	d.Register(fiber.MethodPost, "/session/:id/url", h.HandleNavigate)
	d.Register(fiber.MethodGet, "/session/:id/screenshot", h.HandleScreenshot)
	d.Register(fiber.MethodGet, "/session/:id/title", h.HandleTitle)
	d.Register(fiber.MethodDelete, "/session/:id/window", h.HandleCloseSession)
	d.Register(fiber.MethodDelete, "/session/:id", h.HandleCloseSession)
	d.CatchAll()
}

// HandleStatus reports readiness.
// @Summary Server status
// @Description Reports whether the backend can accept a new session.
// @Tags webdriver
// @Produce json
// @Success 200 {object} map[string]interface{} "{value: {ready, message}}"
// @Router /status [get]
func (h *Handler) HandleStatus(ctx context.Context, req *protocol.Request) (any, error) {
	ready := h.service.Ready(ctx)
	message := "busy"
	if ready {
		message = "ok"
	}
	return fiber.Map{"ready": ready, "message": message}, nil
}

// HandleCreateSession allocates a new session.
// @Summary Create session
// @Description Allocates a new automation session if the backend is free.
// @Tags webdriver
// @Produce json
// @Success 200 {object} map[string]interface{} "{value: {sessionId, capabilities}}"
// @Failure 500 {object} map[string]interface{} "{value: {error: session not created}}"
// @Router /session [post]
func (h *Handler) HandleCreateSession(ctx context.Context, req *protocol.Request) (any, error) {
	id, err := h.service.CreateSession(ctx)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, protocol.ErrSessionNotCreated
	}
	return fiber.Map{"sessionId": id, "capabilities": fiber.Map{}}, nil
}

// HandleNavigate points the session at a URL.
// @Summary Navigate
// @Description Navigates the session to the URL in the request body.
// @Tags webdriver
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{} "{value: {}}"
// @Failure 400 {object} map[string]interface{} "{value: {error: invalid argument}}"
// @Failure 404 {object} map[string]interface{} "{value: {error: invalid session id}}"
// @Router /session/{id}/url [post]
func (h *Handler) HandleNavigate(ctx context.Context, req *protocol.Request) (any, error) {
	var body struct {
		URL string `json:"url"`
	}
	if len(req.Body) > 0 {
		if err := json.Unmarshal(req.Body, &body); err != nil {
			return nil, protocol.ErrInvalidArgument
		}
	}
	if body.URL == "" {
		return nil, protocol.ErrInvalidArgument
	}

	if err := h.service.Navigate(ctx, req.Param("id"), body.URL); err != nil {
		return nil, err
	}
	return fiber.Map{}, nil
}

// HandleScreenshot captures the session display.
// @Summary Screenshot
// @Description Captures the session's display as a base64 PNG string.
// @Tags webdriver
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{} "{value: base64 PNG}"
// @Failure 500 {object} map[string]interface{} "{value: {error: unable to capture screen}}"
// @Router /session/{id}/screenshot [get]
func (h *Handler) HandleScreenshot(ctx context.Context, req *protocol.Request) (any, error) {
	png, err := h.service.Screenshot(ctx, req.Param("id"))
	if err != nil {
		return nil, err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}

// HandleTitle returns the session's page title.
// @Summary Title
// @Description Returns the session's current page title.
// @Tags webdriver
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{} "{value: title}"
// @Failure 404 {object} map[string]interface{} "{value: {error: invalid session id}}"
// @Router /session/{id}/title [get]
func (h *Handler) HandleTitle(ctx context.Context, req *protocol.Request) (any, error) {
	title, err := h.service.Title(ctx, req.Param("id"))
	if err != nil {
		return nil, err
	}
	return title, nil
}

// HandleCloseSession tears the session down. Always succeeds, even for an
// unknown id: clients must be able to clean up without handling failure.
// @Summary Close session
// @Description Closes the session. Idempotent; unknown ids succeed.
// @Tags webdriver
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{} "{value: {}}"
// @Router /session/{id} [delete]
func (h *Handler) HandleCloseSession(ctx context.Context, req *protocol.Request) (any, error) {
	h.service.CloseSession(ctx, req.Param("id"))
	return fiber.Map{}, nil
}

// HandleShutdown stops the server.
// @Summary Shutdown
// @Description Runs the backend shutdown hook and stops the listener.
// @Tags webdriver
// @Produce json
// @Success 200 {object} map[string]interface{} "{value: {}}"
// @Router /shutdown [get]
func (h *Handler) HandleShutdown(ctx context.Context, req *protocol.Request) (any, error) {
	h.service.Shutdown(ctx)
	return fiber.Map{}, nil
}
