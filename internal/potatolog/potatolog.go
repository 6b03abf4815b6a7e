// Package potatolog keeps log entries in memory, so that a trail of what
// happened can still be shown after the fact.
package potatolog

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// LogEntry is a single log entry.
type LogEntry = map[string]any

// GlobalMemoryLogReaderWriter is a global MemoryLogReaderWriter.
var GlobalMemoryLogReaderWriter = MemoryLogReaderWriter{
	mtx: sync.Mutex{},
	log: []LogEntry{},
}

// MemoryLogReaderWriter is a simple in-memory log reader and writer.
// It expects to be written JSON log lines, as zerolog produces them.
type MemoryLogReaderWriter struct {
	mtx sync.Mutex
	log []LogEntry
}

// Write appends a log entry to the log.
func (w *MemoryLogReaderWriter) Write(p []byte) (int, error) {
	entry := LogEntry{}
	err := json.Unmarshal(p, &entry)
	if err != nil {
		return 0, fmt.Errorf("could not unmarshal log entry (err:%s) (input:'%s')", err.Error(), string(p))
	}

	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.log = append(w.log, entry)
	return len(p), nil
}

// Get returns a copy of the log.
func (w *MemoryLogReaderWriter) Get() []LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	return append([]LogEntry{}, w.log...)
}

// Replay writes every entry, re-encoded as a JSON line, to the given writer
// (e.g. a zerolog.ConsoleWriter).
func (w *MemoryLogReaderWriter) Replay(out io.Writer) error {
	for _, entry := range w.Get() {
		line, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("could not marshal log entry (%w)", err)
		}
		if _, err := out.Write(append(line, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// LogReader allows reading access to a log.
type LogReader interface {
	Get() []LogEntry
}
