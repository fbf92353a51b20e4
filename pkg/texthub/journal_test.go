package texthub

import (
	"context"
	"errors"
	"testing"

	"github.com/cognicore/texthub/pkg/texthub/journal/memstore"
)

func TestDispatchRecordsRuns(t *testing.T) {
	j := memstore.New()
	hub := New(Options{Name: "app", Journal: j})
	hub.Register("echo", &echoUnit{result: Result{"n": 1}})

	ctx := context.Background()
	if _, err := hub.Dispatch(ctx, "echo", "first"); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if _, err := hub.Dispatch(ctx, "echo", "second"); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	runs, err := j.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Input != "second" || runs[1].Input != "first" {
		t.Errorf("expected newest-first ordering, got %q then %q", runs[0].Input, runs[1].Input)
	}
	if runs[0].Unit != "echo" {
		t.Errorf("run unit = %q, want echo", runs[0].Unit)
	}
	if runs[0].ID == "" || runs[0].ID == runs[1].ID {
		t.Errorf("runs need distinct ids, got %q and %q", runs[0].ID, runs[1].ID)
	}
}

func TestDispatchFailureNotRecorded(t *testing.T) {
	j := memstore.New()
	hub := New(Options{Name: "app", Journal: j})
	hub.Register("broken", &echoUnit{err: errors.New("boom")})

	ctx := context.Background()
	if _, err := hub.Dispatch(ctx, "broken", "x"); err == nil {
		t.Fatal("expected unit error")
	}
	if _, err := hub.Dispatch(ctx, "missing", "x"); err == nil {
		t.Fatal("expected lookup error")
	}

	runs, err := j.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("failed dispatches must not be journaled, got %d runs", len(runs))
	}
}
