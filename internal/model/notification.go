package model

import (
	"context"
	"time"
)

// Severity classifies a notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notifier surfaces outcomes to the user. Calls are fire-and-forget.
type Notifier interface {
	Notify(ctx context.Context, severity Severity, message string)
}

// Notification is a single user-facing message.
type Notification struct {
	Severity Severity
	Message  string
	At       time.Time
}
