package session

import (
	"context"

	"go.uber.org/zap"
)

// Hooks is the specialization contract a single-session backend implements.
// Because at most one session exists, every hook operates implicitly on "the"
// active session; the Manager has already verified the session id and rearmed
// the idle timer before a hook runs.
type Hooks interface {
	// Navigate points the active session at a URL.
	Navigate(ctx context.Context, url string) error

	// Close releases the device or browser resource behind the active
	// session. Errors are logged and swallowed by the Manager; close must
	// always appear to succeed to the client.
	Close(ctx context.Context) error

	// Shutdown releases backend-wide resources before the server stops.
	Shutdown(ctx context.Context) error
}

// ScreenshotHook is implemented by backends that can capture the active
// session's display. Without it, screenshot requests report
// UnableToCaptureScreen.
type ScreenshotHook interface {
	Screenshot(ctx context.Context) ([]byte, error)
}

// TitleHook is implemented by backends that can report a real page title.
// Without it, title requests return a fixed placeholder; some clients poll
// the title purely as a liveness probe, so accuracy is not required.
type TitleHook interface {
	Title(ctx context.Context) (string, error)
}

// NoopHooks is the built-in placeholder integration. It accepts every
// operation and does nothing, which lets the server run end to end without a
// device attached.
type NoopHooks struct {
	Logger *zap.Logger
}

var _ Hooks = NoopHooks{}

// Navigate logs the request and succeeds.
func (h NoopHooks) Navigate(ctx context.Context, url string) error {
	if h.Logger != nil {
		h.Logger.Info("Noop backend navigation", zap.String("url", url))
	}
	return nil
}

// Close succeeds.
func (h NoopHooks) Close(ctx context.Context) error {
	return nil
}

// Shutdown succeeds.
func (h NoopHooks) Shutdown(ctx context.Context) error {
	return nil
}
