// Package journal records dispatch runs so a host can inspect what its
// units were asked and what they answered.
package journal

import (
	"context"
	"time"
)

// Run is one recorded dispatch: which unit ran, what it was given, and
// the result it produced.
type Run struct {
	ID        string
	Unit      string
	Input     string
	Result    map[string]any
	CreatedAt time.Time
}

// Journal persists dispatch runs.
type Journal interface {
	Close() error

	Append(ctx context.Context, r Run) error
	Recent(ctx context.Context, limit int) ([]Run, error)
	ByUnit(ctx context.Context, unit string, limit int) ([]Run, error)
}
