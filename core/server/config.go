package server

import "strconv"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"4444"`
	// Backend specifies the driver backend serving the protocol (noop).
	Backend string `mapstructure:"backend" default:"noop"`
}

const (
	// BackendNoop is the built-in placeholder backend. Real device
	// integrations provide their own session.Hooks implementation.
	BackendNoop = "noop"
)

// IsValidBackend checks if the configured backend is known.
func (c Config) IsValidBackend() bool {
	switch c.Backend {
	case BackendNoop:
		return true
	default:
		return false
	}
}

// IsValidPort checks that the configured port is a number in 1-65535.
func (c Config) IsValidPort() bool {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return false
	}
	return port >= 1 && port <= 65535
}
