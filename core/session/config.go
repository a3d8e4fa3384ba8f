package session

import "time"

// Config holds configuration for session lifecycle management.
type Config struct {
	// IdleTimeoutSeconds is the inactivity window after which an active
	// session is automatically closed.
	IdleTimeoutSeconds int `mapstructure:"idle_timeout_seconds" default:"120"`
}

// IdleTimeout returns the idle eviction window as a duration.
func (c Config) IdleTimeout() time.Duration {
	seconds := c.IdleTimeoutSeconds
	if seconds <= 0 {
		seconds = 120
	}
	return time.Duration(seconds) * time.Second
}
