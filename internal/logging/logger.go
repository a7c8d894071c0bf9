// Package logging provides leveled, timestamped log lines for aura.
//
// A Logger writes to any io.Writer. Level prefixes are colored when the
// writer is a terminal and plain otherwise, so a log file stays readable.
// The TUI logs to a file (or nowhere) because stdout belongs to the renderer.
// A nil *Logger is valid and discards everything.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Logger appends one line per record to its writer.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	closer  io.Closer
	verbose bool
	now     func() time.Time

	debugPrefix *color.Color
	infoPrefix  *color.Color
	warnPrefix  *color.Color
	errorPrefix *color.Color
}

// New returns a Logger writing to w. Colors are enabled only when w is a
// terminal.
func New(w io.Writer, verbose bool) *Logger {
	l := &Logger{
		out:         w,
		verbose:     verbose,
		now:         time.Now,
		debugPrefix: color.New(color.FgBlue),
		infoPrefix:  color.New(color.FgCyan),
		warnPrefix:  color.New(color.FgYellow),
		errorPrefix: color.New(color.FgRed),
	}
	l.setColor(isTerminal(w))
	return l
}

// Discard returns a Logger that drops every record.
func Discard() *Logger {
	return New(io.Discard, false)
}

// OpenFile appends to the log file at path, creating its directory.
func OpenFile(path string, verbose bool) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: ensure log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}
	l := New(f, verbose)
	l.closer = f
	return l, nil
}

// Close releases the underlying file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// SetVerbose enables or disables Debug output.
func (l *Logger) SetVerbose(v bool) {
	if l == nil {
		return
	}
	l.mu.Lock()
	l.verbose = v
	l.mu.Unlock()
}

// Debugf logs only in verbose mode.
func (l *Logger) Debugf(format string, args ...any) {
	if l == nil || !l.isVerbose() {
		return
	}
	l.write(l.debugPrefix, "DEBUG", format, args...)
}

// Infof logs an informational record.
func (l *Logger) Infof(format string, args ...any) {
	l.write(l.infoPrefix, "INFO", format, args...)
}

// Warnf logs a warning.
func (l *Logger) Warnf(format string, args ...any) {
	l.write(l.warnPrefix, "WARN", format, args...)
}

// Errorf logs an error.
func (l *Logger) Errorf(format string, args ...any) {
	l.write(l.errorPrefix, "ERROR", format, args...)
}

func (l *Logger) isVerbose() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.verbose
}

func (l *Logger) write(prefix *color.Color, level, format string, args ...any) {
	if l == nil || l.out == nil {
		return
	}
	line := strings.TrimRight(fmt.Sprintf(format, args...), "\n")

	l.mu.Lock()
	defer l.mu.Unlock()
	stamp := l.now().Format(time.RFC3339)
	fmt.Fprintf(l.out, "[%s] %s %s\n", stamp, prefix.Sprint("["+level+"]"), line)
}

func (l *Logger) setColor(on bool) {
	for _, c := range []*color.Color{l.debugPrefix, l.infoPrefix, l.warnPrefix, l.errorPrefix} {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
