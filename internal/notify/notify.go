package notify

import (
	log "github.com/sirupsen/logrus"
)

// Notification levels
const (
	TypeSuccess = "success"
	TypeError   = "error"
	TypeInfo    = "info"
)

// Notification is a single user-facing message emitted by a service
type Notification struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Sink receives notifications from services. It is injected explicitly
// rather than registered as a process-wide callback, so every emitter names
// its sink and tests can substitute their own.
type Sink interface {
	Notify(n Notification)
}

// LogSink writes notifications to the application log
type LogSink struct{}

func NewLogSink() *LogSink {
	return &LogSink{}
}

func (s *LogSink) Notify(n Notification) {
	entry := log.WithFields(log.Fields{"title": n.Title, "type": n.Type})
	switch n.Type {
	case TypeError:
		entry.Warn(n.Message)
	default:
		entry.Info(n.Message)
	}
}

// Success is a convenience constructor
func Success(title, message string) Notification {
	return Notification{Title: title, Message: message, Type: TypeSuccess}
}

// Error is a convenience constructor
func Error(title, message string) Notification {
	return Notification{Title: title, Message: message, Type: TypeError}
}

// Info is a convenience constructor
func Info(title, message string) Notification {
	return Notification{Title: title, Message: message, Type: TypeInfo}
}
