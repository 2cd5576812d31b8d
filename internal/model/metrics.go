package model

import "time"

// Operation names a user mutation.
type Operation string

const (
	OperationCreate Operation = "create"
	OperationUpdate Operation = "update"
	OperationDelete Operation = "delete"
)

// Outcome classifies how a mutation ended.
type Outcome string

const (
	OutcomeSuccess   Outcome = "success"
	OutcomeDuplicate Outcome = "duplicate"
	OutcomeError     Outcome = "error"
)

// MetricsRecorder receives timing and result data from the user services.
type MetricsRecorder interface {
	ObserveMutation(op Operation, outcome Outcome, duration time.Duration)
	ObserveRefresh(size int, err error, duration time.Duration)
}

// NoopMetrics discards everything.
type NoopMetrics struct{}

func (NoopMetrics) ObserveMutation(Operation, Outcome, time.Duration) {}

func (NoopMetrics) ObserveRefresh(int, error, time.Duration) {}
