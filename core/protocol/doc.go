// Package protocol implements the WebDriver wire contract shared by every
// endpoint: the closed set of response variants and the dispatcher that
// shapes handler outcomes into them.
//
// # Response Model
//
// Each variant carries a fixed HTTP status and, for the error variants, a
// fixed payload. Centralizing the status-code-to-semantic mapping here means
// endpoints report errors by returning the matching sentinel (for example
// ErrInvalidSessionID) rather than deciding status codes ad hoc.
//
// # Dispatcher
//
// The Dispatcher registers routes on a Fiber router. It extracts path
// parameters and the raw body, logs the command, invokes the handler, and
// serializes the uniform {"value": payload} envelope. Expected protocol
// errors keep their variant; any other error is logged server-side and
// reported as UnknownError, so internal diagnostics never reach the wire.
// Requests matching no route fall through to the UnknownCommand catch-all.
package protocol
