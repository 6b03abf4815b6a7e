package config

import (
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is where the plan server is expected if not told otherwise.
const DefaultBaseURL = "http://127.0.0.1:8000/"

// Default returns the default configuration.
func Default() Config {
	return Config{
		BaseURL:  DefaultBaseURL,
		Timeout:  10 * time.Second,
		Format:   FormatText,
		Color:    ColorAuto,
		LogLevel: zerolog.WarnLevel,
	}
}
