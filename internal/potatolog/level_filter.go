package potatolog

import (
	"io"

	"github.com/rs/zerolog"
)

// LevelFilter passes on only entries of at least level Min, so that one
// logger can feed writers with different verbosity (see
// zerolog.MultiLevelWriter).
type LevelFilter struct {
	Writer io.Writer
	Min    zerolog.Level
}

// Write passes p on unconditionally, as its level is unknown.
func (f LevelFilter) Write(p []byte) (int, error) {
	return f.Writer.Write(p)
}

// WriteLevel passes p on if level is at least f.Min and drops it otherwise.
func (f LevelFilter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < f.Min {
		return len(p), nil
	}
	return f.Writer.Write(p)
}
