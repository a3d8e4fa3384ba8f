// Package session implements the single-session lifecycle manager for
// backends that can only run one automation session at a time.
//
// # State machine
//
// The manager is either Idle (no session) or Active (one session owns the
// server). CreateSession moves Idle to Active, generating a 128-bit
// cryptographically random, hex-encoded session id and arming an idle
// eviction timer. Activity-bearing calls (NavigateTo, Title) verify the id
// and rearm the timer. CloseSession moves Active back to Idle and is
// idempotent: a mismatched or absent id is a silent no-op, and close hook
// failures are logged but never surfaced. Shutdown closes any active session
// first, then runs the backend shutdown hook.
//
// Every transition happens under a single mutex, including id generation
// during create, so concurrent requests cannot produce two active sessions.
// The eviction timer closes by id and close verifies the current id before
// acting, so a timer that outlived its session can never evict a later one.
//
// # Specialization
//
// Backends implement the Hooks interface (Navigate, Close, Shutdown) plus
// the optional ScreenshotHook and TitleHook capabilities. The Manager itself
// satisfies driver.Backend and plugs straight into the protocol endpoints.
package session
