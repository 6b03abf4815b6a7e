// Package config holds the settings an invocation runs with.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config is the configuration of a single invocation, as assembled from
// command line options and environment variables.
type Config struct {
	// BaseURL is the plan server's root, always ending in '/' once normalized.
	BaseURL  string
	Timeout  time.Duration
	Format   Format
	Color    ColorMode
	LogLevel zerolog.Level
}

// A Format is the format plans and statuses are printed in.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// A ColorMode determines whether output is colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Normalize validates the configuration and returns it with the base URL
// brought into canonical form.
func (c Config) Normalize() (Config, error) {
	result := c

	u, err := url.Parse(strings.TrimSpace(c.BaseURL))
	if err != nil {
		return c, fmt.Errorf("invalid server URL '%s' (%w)", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return c, fmt.Errorf("invalid server URL '%s' (scheme must be http or https)", c.BaseURL)
	}
	if u.Host == "" {
		return c, fmt.Errorf("invalid server URL '%s' (no host)", c.BaseURL)
	}
	u.RawQuery, u.Fragment = "", ""
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	result.BaseURL = u.String()

	if c.Timeout < 0 {
		return c, fmt.Errorf("timeout must not be negative (got %s)", c.Timeout)
	}

	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	case "":
		result.Format = FormatText
	default:
		return c, fmt.Errorf("unknown output format '%s'", c.Format)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	case "":
		result.Color = ColorAuto
	default:
		return c, fmt.Errorf("unknown color mode '%s'", c.Color)
	}

	return result, nil
}
