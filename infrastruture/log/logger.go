// Package logger provides per-component loggers that tag every line with a coloured prefix.
package logger

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const colorReset = "\033[0m"

var ErrEmptyPrefix = errors.New("logger prefix must not be empty")

// Logger writes levelled messages for a single component.
type Logger struct {
	entry *logrus.Entry
}

// New creates a logger writing to out, with every line tagged by prefix in the given ANSI color.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&prefixFormatter{prefix: prefix, color: color})
	return &Logger{entry: logrus.NewEntry(l)}, nil
}

// With returns a logger that appends key=value to every line.
func (l *Logger) With(key string, value any) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.entry.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.entry.Info(msg)
}

// Warning logs a warning.
func (l *Logger) Warning(msg string) {
	l.entry.Warn(msg)
}

// Error logs an error.
func (l *Logger) Error(msg string) {
	l.entry.Error(msg)
}

// Fatal logs msg and exits the process.
func (l *Logger) Fatal(msg string) {
	l.entry.Fatal(msg)
}

// prefixFormatter renders "<color>[PREFIX]<reset> [LEVEL] time message key=value".
type prefixFormatter struct {
	prefix string
	color  string
}

func (f *prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	if f.color != "" {
		fmt.Fprintf(&b, "%s[%s]%s", f.color, f.prefix, colorReset)
	} else {
		fmt.Fprintf(&b, "[%s]", f.prefix)
	}
	fmt.Fprintf(&b, " [%s] %s %s", strings.ToUpper(e.Level.String()), e.Time.Format(time.RFC3339), e.Message)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Data[k])
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}
