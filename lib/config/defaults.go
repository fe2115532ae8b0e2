package config

import (
	"fmt"
	"strings"

	"github.com/go-i2p/logger"
	"github.com/samber/lo"
)

// ConfigDefaults contains every configuration value the tool reads.
type ConfigDefaults struct {
	Log    LogDefaults
	Decode DecodeDefaults
}

type LogDefaults struct {
	// Level is a logrus level name.
	// Default: warn
	Level string

	// Format is text or json.
	// Default: text
	Format string
}

type DecodeDefaults struct {
	// Input is how envelope bytes are encoded on stdin or in the file: raw,
	// hex or base64.
	// Default: raw
	Input string

	// Output is yaml, json or text.
	// Default: yaml
	Output string

	// ShowDiagnostics includes dropped entries in the output.
	// Default: true
	ShowDiagnostics bool

	// Color styles text output.
	// Default: true
	Color bool
}

var (
	InputFormats  = []string{"raw", "hex", "base64"}
	OutputFormats = []string{"yaml", "json", "text"}
	LogFormats    = []string{"text", "json"}
	LogLevels     = []string{"trace", "debug", "info", "warn", "warning", "error", "fatal", "panic"}
)

// Defaults returns a ConfigDefaults instance with all default values set.
func Defaults() ConfigDefaults {
	return ConfigDefaults{
		Log: LogDefaults{
			Level:  "warn",
			Format: "text",
		},
		Decode: DecodeDefaults{
			Input:           "raw",
			Output:          "yaml",
			ShowDiagnostics: true,
			Color:           true,
		},
	}
}

// Validate checks that every enumerated value is one the tool understands.
func Validate(cfg ConfigDefaults) error {
	log.WithFields(logger.Fields{
		"at":     "config.Validate",
		"reason": "verification_requested",
	}).Debug("validating configuration")

	checks := []struct {
		key     string
		value   string
		allowed []string
	}{
		{"log.level", cfg.Log.Level, LogLevels},
		{"log.format", cfg.Log.Format, LogFormats},
		{"decode.input", cfg.Decode.Input, InputFormats},
		{"decode.output", cfg.Decode.Output, OutputFormats},
	}
	for _, c := range checks {
		if !lo.Contains(c.allowed, c.value) {
			log.WithFields(logger.Fields{
				"at":    "config.Validate",
				"key":   c.key,
				"value": c.value,
			}).Error("invalid configuration")
			return newValidationError(fmt.Sprintf("%s must be one of [%s], got %q",
				c.key, strings.Join(c.allowed, " "), c.value))
		}
	}
	return nil
}

type validationError struct {
	message string
}

func newValidationError(message string) error {
	return &validationError{message: message}
}

func (e *validationError) Error() string {
	return "configuration validation failed: " + e.message
}
