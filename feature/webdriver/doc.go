// Package webdriver exposes the WebDriver protocol subset over HTTP.
//
// The handler registers the endpoint table through the protocol dispatcher;
// the service drives the abstract driver.Backend and owns the cross-cutting
// concerns: session event auditing, the optional screenshot archive, and the
// listener stop after a shutdown command.
//
// # HTTP Endpoints
//
//   - GET    /status                    : readiness probe.
//   - POST   /session                   : create a session.
//   - POST   /session/{id}/url         : navigate the session.
//   - GET    /session/{id}/screenshot  : capture the display (base64 PNG).
//   - GET    /session/{id}/title       : current page title.
//   - DELETE /session/{id}             : close the session (idempotent).
//   - DELETE /session/{id}/window      : same as above.
//   - GET    /shutdown                  : stop the server.
//   - anything else                     : 404 unknown command.
//
// Responses are always {"value": payload} with the protocol's fixed status
// codes.
package webdriver
