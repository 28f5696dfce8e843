// Package metrics persists per-file conversion outcomes so model
// quality can be compared across runs. Recording is fire-and-forget
// from the orchestrator's point of view: a broken sink never blocks a
// conversion.
package metrics

import (
	"context"
	"time"
)

// Record is one converted file's outcome.
type Record struct {
	ConversionID string
	SourcePath   string
	Backend      string
	AIUsed       bool
	Success      bool
	DurationMS   int64
	Error        string
	At           time.Time
}

type Recorder interface {
	Record(ctx context.Context, r Record) error
	Close() error
}

// Noop discards every record. Used when no sink is configured.
type Noop struct{}

func (Noop) Record(context.Context, Record) error { return nil }
func (Noop) Close() error                         { return nil }
