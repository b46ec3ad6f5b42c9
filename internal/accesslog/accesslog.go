// Package accesslog appends one Apache-style line per handled request.
package accesslog

import (
	"fmt"
	"os"
	"time"
)

const (
	timeLayout = "02/Jan/2006:15:04:05"
	utcOffset  = "+0000"
)

type Entry struct {
	ClientIP    string
	Time        time.Time
	RequestLine string
	Status      int
	Size        int
}

// Format renders e as `<ip> - - [<time>] "<request line>" <status> <size>`.
// The identity and user fields are always "-".
func Format(e Entry) string {
	return fmt.Sprintf("%s - - [%s %s] \"%s\" %d %d\n",
		e.ClientIP, e.Time.UTC().Format(timeLayout), utcOffset, e.RequestLine, e.Status, e.Size)
}

type Logger struct {
	// Now stamps entries that carry a zero Time.
	Now  func() time.Time
	path string
	file *os.File
}

// Open opens path for appending, creating it if needed.
func Open(path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("could not open access log %s: %w", path, err)
	}
	return &Logger{Now: time.Now, path: path, file: f}, nil
}

func (l *Logger) Path() string {
	return l.path
}

// Append writes one line with a single write on the O_APPEND handle.
func (l *Logger) Append(e Entry) error {
	if e.Time.IsZero() {
		e.Time = l.Now()
	}
	if _, err := l.file.WriteString(Format(e)); err != nil {
		return fmt.Errorf("could not append to access log %s: %w", l.path, err)
	}
	return nil
}

func (l *Logger) Close() error {
	return l.file.Close()
}
