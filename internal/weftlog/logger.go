// Package weftlog appends tangle-run events to a plain-text log file.
//
// The log is an audit trail of what each run parsed and wrote: one
// line per event, newest last, safe to tail. Logging failures never
// fail a run.
package weftlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EventType identifies what happened.
type EventType string

const (
	// EventParse records a successfully parsed document.
	EventParse EventType = "parse"

	// EventWrite records a destination file that was (re)written.
	EventWrite EventType = "write"

	// EventSkip records a destination file left untouched because
	// its content already matched.
	EventSkip EventType = "skip"

	// EventError records a fatal run error.
	EventError EventType = "error"
)

// Event is one log entry.
type Event struct {
	Timestamp time.Time
	Type      EventType
	Run       string // short run ID, shared by all events of one run
	Subject   string // document or destination path
	Detail    string // free-form context
}

// Logger appends events to one log file. A nil *Logger discards all
// events, so callers never need to guard their Log calls.
type Logger struct {
	path string
	run  string
}

// New returns a logger appending to path, stamped with a fresh run ID.
func New(path string) *Logger {
	return &Logger{path: path, run: uuid.NewString()[:8]}
}

// Run returns the logger's run ID, or "" for a nil logger.
func (l *Logger) Run() string {
	if l == nil {
		return ""
	}
	return l.run
}

// Log appends one event. Errors are swallowed: the log is advisory.
func (l *Logger) Log(t EventType, subject, detail string) {
	if l == nil {
		return
	}
	e := Event{
		Timestamp: time.Now(),
		Type:      t,
		Run:       l.run,
		Subject:   subject,
		Detail:    detail,
	}
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = f.WriteString(formatLogLine(e))
}

// formatLogLine renders one event as a single log line.
func formatLogLine(e Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] run=%s %s",
		e.Timestamp.Format("2006-01-02 15:04:05"), e.Type, e.Run, e.Subject)
	if e.Detail != "" {
		fmt.Fprintf(&b, " (%s)", e.Detail)
	}
	b.WriteByte('\n')
	return b.String()
}
