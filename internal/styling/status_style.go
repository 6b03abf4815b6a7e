// Package styling colors the lines printed to the terminal.
package styling

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-isatty"

	"github.com/ja-he/todo/internal/config"
	"github.com/ja-he/todo/internal/storage"
)

// StatusStyling holds the colors statuses are printed in, by class.
type StatusStyling struct {
	Success     colorful.Color
	Redirect    colorful.Color
	ClientError colorful.Color
	ServerError colorful.Color
}

// DefaultStatusStyling returns the status colors for a terminal with the
// given kind of background.
func DefaultStatusStyling(darkBackground bool) StatusStyling {
	s := StatusStyling{
		Success:     colorfulColorFromHexString("#3a751a"),
		Redirect:    colorfulColorFromHexString("#0065a3"),
		ClientError: colorfulColorFromHexString("#cc8f00"),
		ServerError: colorfulColorFromHexString("#cc2222"),
	}
	if !darkBackground {
		s.Success = darkenColorfulColor(s.Success, 20)
		s.ClientError = darkenColorfulColor(s.ClientError, 20)
	}
	return s
}

// A Styler colors text, or passes it through unchanged when disabled.
type Styler struct {
	enabled bool
	colors  StatusStyling
}

// NewStyler creates a styler for output going to w.
// In config.ColorAuto mode color is only used when w is a terminal.
func NewStyler(mode config.ColorMode, w io.Writer) Styler {
	enabled := false
	switch mode {
	case config.ColorAlways:
		enabled = true
	case config.ColorAuto:
		if f, ok := w.(*os.File); ok {
			enabled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
	}
	return Styler{enabled: enabled, colors: DefaultStatusStyling(darkBackground(os.Getenv("COLORFGBG")))}
}

// darkBackground guesses from a 'COLORFGBG' value (e.g. '15;0') whether the
// terminal background is dark, assuming it is if nothing is known.
func darkBackground(colorfgbg string) bool {
	if colorfgbg == "" {
		return true
	}
	fields := strings.Split(colorfgbg, ";")
	bg, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return true
	}
	return bg < 7 || bg == 8
}

// Enabled reports whether the styler colors anything.
func (s Styler) Enabled() bool {
	return s.enabled
}

// Status renders the status in the color of its class.
func (s Styler) Status(status storage.Status) string {
	text := status.String()
	if !s.enabled {
		return text
	}

	var color colorful.Color
	switch {
	case status.Code >= 500:
		color = s.colors.ServerError
	case status.Code >= 400:
		color = s.colors.ClientError
	case status.Code >= 300:
		color = s.colors.Redirect
	case status.Code >= 200:
		color = s.colors.Success
	default:
		return text
	}
	return ansiForeground(color) + text + ansiReset
}
