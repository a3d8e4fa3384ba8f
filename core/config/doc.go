// Package config aggregates the application configuration from environment
// variables and an optional .env file.
//
// Each subsystem (server, session, log, database, storage) defines its own
// Config struct with 'mapstructure' and 'default' tags; this package binds
// them into a single tree with Viper. Environment variables map onto nested
// keys by underscore replacement, so SERVER_PORT sets server.port and
// SESSION_IDLE_TIMEOUT_SECONDS sets session.idle_timeout_seconds.
//
// Configuration is read once at startup and treated as immutable for the
// process lifetime.
package config
