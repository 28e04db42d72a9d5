// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

// Package notify implements the transient notification surface: discrete
// toast-style events emitted by the session service and streamed to the
// browser. Publishers fire and forget; nothing in the platform waits for a
// notification to be displayed or dismissed.
package notify

import (
	"time"

	"github.com/vinevault/vinevault/internal/logger"
)

// Kind classifies a notification event.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

// Event is a single notification. Duration of zero means the UI picks its
// own auto-dismiss interval.
type Event struct {
	Kind     Kind          `json:"kind"`
	Title    string        `json:"title"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
}

//go:generate mockgen -source=notify.go -destination=../mock/mock_notify.go -package=mock

// Notifier receives notification events. Implementations must never block
// the publisher.
type Notifier interface {
	Notify(event Event)
}

// Success is a convenience constructor for a success event.
func Success(title, message string) Event {
	return Event{Kind: KindSuccess, Title: title, Message: message}
}

// Error is a convenience constructor for an error event.
func Error(title, message string) Event {
	return Event{Kind: KindError, Title: title, Message: message}
}

// logNotifier writes every event to the structured log. Used for headless
// runs and as the fallback sink when no browser is subscribed.
type logNotifier struct {
	logger *logger.Logger
}

// NewLogNotifier returns a Notifier backed by the given logger.
func NewLogNotifier(log *logger.Logger) Notifier {
	return &logNotifier{logger: log}
}

func (n *logNotifier) Notify(event Event) {
	n.logger.Info().
		Str("kind", string(event.Kind)).
		Str("title", event.Title).
		Str("message", event.Message).
		Msg("notification")
}

// nopNotifier discards events. Used in tests.
type nopNotifier struct{}

// Nop returns a Notifier that discards all events.
func Nop() Notifier {
	return nopNotifier{}
}

func (nopNotifier) Notify(Event) {}
