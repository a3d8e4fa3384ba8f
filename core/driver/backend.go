package driver

import (
	"context"

	"github.com/cashpipeplusplus/generic-webdriver-server/core/protocol"
)

// Backend is the contract a device or browser integration implements to serve
// the protocol. Every method may block on backend I/O and honors the request
// context.
type Backend interface {
	// Ready reports whether the backend can accept a new session.
	Ready(ctx context.Context) bool

	// CreateSession allocates a session and returns its id. An empty id
	// with a nil error means the backend refused the session; the endpoint
	// reports SessionNotCreated.
	CreateSession(ctx context.Context) (string, error)

	// NavigateTo points the session at a URL.
	NavigateTo(ctx context.Context, sessionID, url string) error

	// Screenshot captures the session's display as PNG bytes.
	Screenshot(ctx context.Context, sessionID string) ([]byte, error)

	// Title returns the session's current page title.
	Title(ctx context.Context, sessionID string) (string, error)

	// CloseSession tears the session down. It never fails: redundant client
	// cleanup must always succeed, so backends absorb and log failures. A
	// missing or mismatched id is a silent no-op.
	CloseSession(ctx context.Context, sessionID string)

	// Shutdown releases backend resources before the server stops.
	Shutdown(ctx context.Context) error
}

// UnimplementedBackend provides the default behavior for every Backend
// operation. Integrations embed it and override what they support.
type UnimplementedBackend struct{}

var _ Backend = UnimplementedBackend{}

// Ready reports not ready.
func (UnimplementedBackend) Ready(ctx context.Context) bool {
	return false
}

// CreateSession refuses the session.
func (UnimplementedBackend) CreateSession(ctx context.Context) (string, error) {
	return "", nil
}

// NavigateTo rejects the session id.
func (UnimplementedBackend) NavigateTo(ctx context.Context, sessionID, url string) error {
	return protocol.ErrInvalidSessionID
}

// Screenshot reports capture as unsupported.
func (UnimplementedBackend) Screenshot(ctx context.Context, sessionID string) ([]byte, error) {
	return nil, protocol.ErrUnableToCaptureScreen
}

// Title rejects the session id.
func (UnimplementedBackend) Title(ctx context.Context, sessionID string) (string, error) {
	return "", protocol.ErrInvalidSessionID
}

// CloseSession is a no-op.
func (UnimplementedBackend) CloseSession(ctx context.Context, sessionID string) {}

// Shutdown is a no-op.
func (UnimplementedBackend) Shutdown(ctx context.Context) error {
	return nil
}
