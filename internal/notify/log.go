// Package notify delivers user-facing notifications to logs and live subscribers.
package notify

import (
	"context"

	"github.com/carlosebw/crudify/internal/logger"
	"github.com/carlosebw/crudify/internal/model"
)

var (
	_ model.Notifier = (*Log)(nil)
	_ model.Notifier = (*Hub)(nil)
	_ model.Notifier = Multi(nil)
)

// Log writes notifications to the application log.
type Log struct {
	logger *logger.Logger
}

func NewLog(l *logger.Logger) *Log {
	return &Log{logger: l}
}

func (n *Log) Notify(ctx context.Context, severity model.Severity, message string) {
	if severity == model.SeverityError {
		n.logger.ErrorContext(ctx, "notification", "severity", severity, "message", message)
		return
	}
	n.logger.InfoContext(ctx, "notification", "severity", severity, "message", message)
}

// Multi forwards every notification to each notifier in order.
type Multi []model.Notifier

func (m Multi) Notify(ctx context.Context, severity model.Severity, message string) {
	for _, n := range m {
		n.Notify(ctx, severity, message)
	}
}
