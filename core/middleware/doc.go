// Package middleware groups the Fiber middlewares used by the server.
//
// Each middleware lives in its own subpackage and is registered in the start
// command. The rayid middleware tags every request with a correlation id so
// all log lines for one protocol command can be tied together.
package middleware
