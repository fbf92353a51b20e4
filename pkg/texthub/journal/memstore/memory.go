package memstore

import (
	"context"
	"sync"

	"github.com/cognicore/texthub/pkg/texthub/journal"
)

// Journal is an in-memory implementation of journal.Journal for tests.
type Journal struct {
	mu   sync.RWMutex
	runs []journal.Run
}

// New creates a new in-memory journal.
func New() *Journal {
	return &Journal{}
}

// Close implements journal.Journal.
func (j *Journal) Close() error { return nil }

// Append stores one run.
func (j *Journal) Append(ctx context.Context, r journal.Run) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.runs = append(j.runs, copyRun(r))
	return nil
}

// Recent returns up to limit runs, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]journal.Run, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}

	out := make([]journal.Run, 0, limit)
	for i := len(j.runs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, copyRun(j.runs[i]))
	}
	return out, nil
}

// ByUnit returns up to limit runs for one unit, newest first.
func (j *Journal) ByUnit(ctx context.Context, unit string, limit int) ([]journal.Run, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}

	out := make([]journal.Run, 0, limit)
	for i := len(j.runs) - 1; i >= 0 && len(out) < limit; i-- {
		if j.runs[i].Unit != unit {
			continue
		}
		out = append(out, copyRun(j.runs[i]))
	}
	return out, nil
}

func copyRun(r journal.Run) journal.Run {
	out := r
	if r.Result != nil {
		out.Result = make(map[string]any, len(r.Result))
		for key, val := range r.Result {
			out.Result[key] = val
		}
	}
	return out
}
