// Package driver defines the abstract backend contract the protocol endpoints
// are written against.
//
// The framework never touches the device or browser resource a session
// represents; it reaches it only through the Backend interface. Integrations
// embed UnimplementedBackend to inherit the protocol's documented defaults
// (not ready, sessions refused, navigation and title rejected with an invalid
// session id, screenshots unsupported, close and shutdown as no-ops) and
// override the operations they support.
//
// Single-session backends do not implement Backend directly; they implement
// the smaller session.Hooks contract and let session.Manager supply the
// lifecycle rules.
package driver
