package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/cognicore/texthub/pkg/texthub/journal"
)

func appendRun(t *testing.T, j *Journal, id, unit, input string) {
	t.Helper()
	err := j.Append(context.Background(), journal.Run{
		ID:        id,
		Unit:      unit,
		Input:     input,
		Result:    map[string]any{"ok": true},
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
}

func TestRecentNewestFirst(t *testing.T) {
	j := New()
	appendRun(t, j, "1", "sentiment", "first")
	appendRun(t, j, "2", "tokens", "second")
	appendRun(t, j, "3", "sentiment", "third")

	runs, err := j.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	if runs[0].ID != "3" || runs[2].ID != "1" {
		t.Errorf("expected newest-first ordering, got %v", runs)
	}
}

func TestRecentLimit(t *testing.T) {
	j := New()
	appendRun(t, j, "1", "sentiment", "a")
	appendRun(t, j, "2", "sentiment", "b")
	appendRun(t, j, "3", "sentiment", "c")

	runs, err := j.Recent(context.Background(), 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != "3" {
		t.Errorf("expected newest run first, got %v", runs[0])
	}
}

func TestByUnit(t *testing.T) {
	j := New()
	appendRun(t, j, "1", "sentiment", "a")
	appendRun(t, j, "2", "tokens", "b")
	appendRun(t, j, "3", "sentiment", "c")

	runs, err := j.ByUnit(context.Background(), "sentiment", 10)
	if err != nil {
		t.Fatalf("by unit: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 sentiment runs, got %d", len(runs))
	}
	for _, r := range runs {
		if r.Unit != "sentiment" {
			t.Errorf("unexpected unit %q", r.Unit)
		}
	}
}

func TestAppendCopiesResult(t *testing.T) {
	j := New()
	result := map[string]any{"score": 1}
	err := j.Append(context.Background(), journal.Run{ID: "1", Unit: "u", Result: result})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	result["score"] = 99

	runs, err := j.Recent(context.Background(), 1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if runs[0].Result["score"] != 1 {
		t.Errorf("stored result must not alias the caller's map, got %v", runs[0].Result)
	}
}
