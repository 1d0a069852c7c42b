// Package logging provides the component-tagged leveled logger webdrive
// packages write to. The library never configures process-wide logging:
// the embedding application injects a sink (any io.Writer) once at startup
// and passes the logger down; the default is a no-op.
package logging

import (
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Logger writes structured, component-tagged log entries to an injected
// sink. All methods are safe for concurrent use. Entries carry a session
// id so interleaved output from several browser sessions stays separable.
type Logger struct {
	sessionID string
	component string
	out       *log.Logger
	mu        sync.Mutex
	discard   bool
}

var (
	sessionID     string
	sessionIDOnce sync.Once
)

// getSessionID returns or creates the process-wide session id.
func getSessionID() string {
	sessionIDOnce.Do(func() {
		sessionID = uuid.New().String()
	})
	return sessionID
}

// New creates a logger for a component writing to the given sink. A nil
// sink yields a no-op logger, same as Nop.
func New(component string, sink io.Writer) *Logger {
	if sink == nil {
		return Nop(component)
	}
	return &Logger{
		sessionID: getSessionID(),
		component: component,
		out:       log.New(sink, "", 0), // timestamps are formatted here
	}
}

// Nop returns a logger that drops every entry. Used as the default when
// the caller does not inject a sink.
func Nop(component string) *Logger {
	return &Logger{
		sessionID: getSessionID(),
		component: component,
		out:       log.New(io.Discard, "", 0),
		discard:   true,
	}
}

// WithComponent returns a logger sharing this logger's sink but tagged
// with a different component name.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		sessionID: l.sessionID,
		component: component,
		out:       l.out,
		discard:   l.discard,
	}
}

// formatEntry creates an entry with timestamp, component and level.
func (l *Logger) formatEntry(level, message string) string {
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	return fmt.Sprintf("[%s] [%s] [%s] %s", timestamp, l.component, level, message)
}

func (l *Logger) logf(level, format string, v ...interface{}) {
	if l.discard {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out.Println(l.formatEntry(level, fmt.Sprintf(format, v...)))
}

// Debugf logs a debug-level message.
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.logf("DEBUG", format, v...)
}

// Infof logs an info-level message.
func (l *Logger) Infof(format string, v ...interface{}) {
	l.logf("INFO", format, v...)
}

// Warnf logs a warning-level message.
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.logf("WARN", format, v...)
}

// Errorf logs an error-level message.
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.logf("ERROR", format, v...)
}

// SessionID returns the process-wide session id stamped on this logger.
func (l *Logger) SessionID() string {
	return l.sessionID
}

// GetSessionID returns the process-wide session id.
func GetSessionID() string {
	return getSessionID()
}
