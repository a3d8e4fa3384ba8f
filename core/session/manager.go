package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/cashpipeplusplus/generic-webdriver-server/core/driver"
	"github.com/cashpipeplusplus/generic-webdriver-server/core/protocol"

	"go.uber.org/zap"
)

// placeholderTitle is returned when the hooks cannot report a real title.
const placeholderTitle = ""

// active is the Active half of the manager's state. A nil *active means Idle.
type active struct {
	id    string
	timer *time.Timer
}

// Manager enforces the one-session-at-a-time lifecycle over a Hooks
// implementation. All state transitions happen under a single mutex, so two
// concurrent create-session requests serialize and exactly one wins.
type Manager struct {
	mu          sync.Mutex
	session     *active
	hooks       Hooks
	idleTimeout time.Duration
	logger      *zap.Logger
}

var _ driver.Backend = (*Manager)(nil)

// NewManager creates a lifecycle manager for a single-session backend.
func NewManager(hooks Hooks, idleTimeout time.Duration, logger *zap.Logger) *Manager {
	return &Manager{
		hooks:       hooks,
		idleTimeout: idleTimeout,
		logger:      logger,
	}
}

// Ready reports true iff no session is active.
func (m *Manager) Ready(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session == nil
}

// CreateSession transitions Idle to Active. The check, the id generation, and
// the commit all happen inside the critical section, so the at-most-one
// invariant holds under concurrent requests. While Active it returns an empty
// id, which the endpoint reports as SessionNotCreated.
func (m *Manager) CreateSession(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session != nil {
		m.logger.Error("Session creation refused, a session is already active",
			zap.String("active_session_id", m.session.id))
		return "", nil
	}

	id, err := newSessionID()
	if err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}

	m.session = &active{
		id:    id,
		timer: time.AfterFunc(m.idleTimeout, func() { m.evict(id) }),
	}
	m.logger.Info("Session created",
		zap.String("session_id", id),
		zap.Duration("idle_timeout", m.idleTimeout))
	return id, nil
}

// NavigateTo verifies the session id, rearms the idle timer, and delegates to
// the navigation hook.
func (m *Manager) NavigateTo(ctx context.Context, sessionID, url string) error {
	if err := m.touch(sessionID); err != nil {
		return err
	}
	return m.hooks.Navigate(ctx, url)
}

// Title verifies the session id and rearms the idle timer. Backends without a
// TitleHook get a fixed placeholder; clients poll this as a liveness probe.
func (m *Manager) Title(ctx context.Context, sessionID string) (string, error) {
	if err := m.touch(sessionID); err != nil {
		return "", err
	}
	if th, ok := m.hooks.(TitleHook); ok {
		return th.Title(ctx)
	}
	return placeholderTitle, nil
}

// Screenshot verifies the session id and delegates to the capture hook.
// Screenshots are not activity-bearing: the idle clock keeps running.
func (m *Manager) Screenshot(ctx context.Context, sessionID string) ([]byte, error) {
	m.mu.Lock()
	current := m.session != nil && m.session.id == sessionID
	m.mu.Unlock()

	if !current {
		return nil, protocol.ErrInvalidSessionID
	}
	if sh, ok := m.hooks.(ScreenshotHook); ok {
		return sh.Screenshot(ctx)
	}
	return nil, protocol.ErrUnableToCaptureScreen
}

// CloseSession transitions Active to Idle for a matching id and is a silent
// no-op otherwise, so redundant client cleanup never fails. The pending idle
// timer is invalidated before the state clears; hook failures are logged and
// swallowed.
func (m *Manager) CloseSession(ctx context.Context, sessionID string) {
	m.mu.Lock()
	if m.session == nil || m.session.id != sessionID {
		m.mu.Unlock()
		return
	}
	m.session.timer.Stop()
	m.session = nil
	m.mu.Unlock()

	m.logger.Info("Session closed", zap.String("session_id", sessionID))
	if err := m.hooks.Close(ctx); err != nil {
		m.logger.Warn("Session close hook failed",
			zap.String("session_id", sessionID),
			zap.Error(err))
	}
}

// Shutdown closes any active session, then runs the backend shutdown hook.
func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	var id string
	if m.session != nil {
		id = m.session.id
	}
	m.mu.Unlock()

	if id != "" {
		m.CloseSession(ctx, id)
	}
	return m.hooks.Shutdown(ctx)
}

// touch verifies that sessionID is the active session and rearms its idle
// timer. The reset happens under the lock, so a timer is never rearmed for a
// session that is no longer current.
func (m *Manager) touch(sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil || m.session.id != sessionID {
		return protocol.ErrInvalidSessionID
	}
	m.session.timer.Reset(m.idleTimeout)
	return nil
}

// evict runs when the idle timer fires. It closes by id: if the session was
// already closed and a new one took its place, the stale timer is a no-op
// because CloseSession verifies the current id first.
func (m *Manager) evict(sessionID string) {
	m.logger.Warn("Session idle timeout reached, closing session",
		zap.String("session_id", sessionID),
		zap.Duration("idle_timeout", m.idleTimeout))
	m.CloseSession(context.Background(), sessionID)
}

// newSessionID returns 128 bits from a cryptographically secure source,
// hex-encoded. Uniqueness is probabilistic; collisions are not tracked.
func newSessionID() (string, error) {
	var raw [16]byte
	if _, err := rand.Read(raw[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw[:]), nil
}
