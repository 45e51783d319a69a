// Package logging provides structured logging using bolt.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/felixgeelhaar/bolt/v3"
)

// Config configures a logger.
type Config struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string `yaml:"level"`

	// Format is the output format (json or console).
	Format string `yaml:"format"`

	// Output is the output destination. Defaults to os.Stderr.
	Output io.Writer `yaml:"-"`
}

// DefaultConfig returns console output at info level on stderr.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
		Output: os.Stderr,
	}
}

// parseLevel converts a string level to bolt.Level.
func parseLevel(s string) bolt.Level {
	switch strings.ToLower(s) {
	case "trace":
		return bolt.TRACE
	case "debug":
		return bolt.DEBUG
	case "info":
		return bolt.INFO
	case "warn":
		return bolt.WARN
	case "error":
		return bolt.ERROR
	default:
		return bolt.INFO
	}
}

// ValidLevel reports whether s names a known level.
func ValidLevel(s string) bool {
	switch strings.ToLower(s) {
	case "trace", "debug", "info", "warn", "error":
		return true
	}
	return false
}

// ValidFormat reports whether s names a known output format.
func ValidFormat(s string) bool {
	return s == "json" || s == "console"
}

// New builds a logger from config.
func New(config Config) *bolt.Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	var handler bolt.Handler
	if config.Format == "json" {
		handler = bolt.NewJSONHandler(output)
	} else {
		handler = bolt.NewConsoleHandler(output)
	}

	return bolt.New(handler).SetLevel(parseLevel(config.Level))
}

// Apply adds fields to an event and returns it for chaining.
func Apply(e *bolt.Event, fields ...Field) *bolt.Event {
	for _, f := range fields {
		e = f(e)
	}
	return e
}
