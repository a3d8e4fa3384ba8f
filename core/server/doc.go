// Package server holds the HTTP server configuration and constants.
//
// While the main application entry point handles the server startup, this
// package defines the configuration structures and valid values for server
// settings, such as the listen port and the selected driver backend.
//
// # Configuration
//
// The Config struct defines the HTTP port (validated to 1-65535) and the
// backend serving the protocol. Only the built-in noop backend ships with the
// framework; device integrations supply their own hooks at wiring time.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by the start command to validate startup parameters.
package server
