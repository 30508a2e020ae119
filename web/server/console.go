package server

import (
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/log"
)

// ConsoleMessage is a renderer log line forwarded to the browser
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info" or "debug"
}

// WebLogger implements core.Logger by copying messages to the server log and
// to a console channel drained by the render stream
type WebLogger struct {
	renderID    string
	server      log.Logger
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, server log.Logger, consoleChan chan<- ConsoleMessage) core.Logger {
	return &WebLogger{
		renderID:    renderID,
		server:      server,
		consoleChan: consoleChan,
	}
}

// Infof implements core.Logger
func (wl *WebLogger) Infof(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	if wl.server != nil {
		wl.server.Infof("[%s] %s", wl.renderID, message)
	}
	wl.send(message, "info")
}

// Debugf implements core.Logger
func (wl *WebLogger) Debugf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	if wl.server != nil {
		wl.server.Debugf("[%s] %s", wl.renderID, message)
	}
	wl.send(message, "debug")
}

func (wl *WebLogger) send(message, level string) {
	if wl.consoleChan == nil {
		return
	}
	select {
	case wl.consoleChan <- ConsoleMessage{
		Message:   message,
		Timestamp: time.Now(),
		Level:     level,
	}:
	default:
		// Channel full, drop rather than stall a render band
	}
}
