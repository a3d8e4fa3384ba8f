package server_test

import (
	"testing"

	"github.com/cashpipeplusplus/generic-webdriver-server/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidBackend(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		want    bool
	}{
		{"Noop", server.BackendNoop, true},
		{"Invalid", "invalid", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Backend: tt.backend}
			assert.Equal(t, tt.want, c.IsValidBackend())
		})
	}
}

func TestConfig_IsValidPort(t *testing.T) {
	tests := []struct {
		name string
		port string
		want bool
	}{
		{"Default", "4444", true},
		{"LowerBound", "1", true},
		{"UpperBound", "65535", true},
		{"Zero", "0", false},
		{"TooHigh", "65536", false},
		{"NotANumber", "http", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Port: tt.port}
			assert.Equal(t, tt.want, c.IsValidPort())
		})
	}
}
