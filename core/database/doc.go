// Package database manages the optional MySQL connection behind the session
// audit log.
//
// The connection is established once at startup. When it fails, the server
// logs a warning and keeps serving the protocol without persistence; nothing
// in the request path depends on the database being present.
package database
