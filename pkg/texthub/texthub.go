// Package texthub hosts pluggable text-analysis units: a named registry
// that dispatches input to a registered unit and persists the host's
// configuration as a JSON snapshot.
package texthub

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/texthub/pkg/texthub/internalerr"
	"github.com/cognicore/texthub/pkg/texthub/journal"
)

// Result is the structured output of a unit.
type Result map[string]any

// Unit is anything that can transform one input into one structured
// result. Implementations must be deterministic, must not mutate the
// input, and must not fail for well-formed string input (the empty
// string included).
type Unit interface {
	Transform(input any) (Result, error)
}

// Hub owns a set of named units, a mergeable configuration, and the
// host's identity. A Hub is not safe for concurrent use; callers that
// share one across goroutines must serialize access.
type Hub struct {
	name      string
	createdAt time.Time
	units     map[string]Unit
	config    map[string]any
	journal   journal.Journal
	entropy   *ulid.MonotonicEntropy
}

// Options configures a Hub instance.
type Options struct {
	Name string

	// CreatedAt pins the creation timestamp; zero means now. Tests
	// inject a fixed value here instead of reading the wall clock.
	CreatedAt time.Time

	// Journal, when set, records every successful dispatch.
	Journal journal.Journal
}

// New creates a Hub with the given options.
func New(opts Options) *Hub {
	createdAt := opts.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	return &Hub{
		name:      opts.Name,
		createdAt: createdAt,
		units:     make(map[string]Unit),
		config:    make(map[string]any),
		journal:   opts.Journal,
		entropy:   ulid.Monotonic(rand.Reader, 0),
	}
}

// Name returns the hub's name.
func (h *Hub) Name() string { return h.name }

// CreatedAt returns the creation timestamp, fixed at construction.
func (h *Hub) CreatedAt() time.Time { return h.createdAt }

// UnitNames returns the registered unit names, sorted.
func (h *Hub) UnitNames() []string {
	names := make([]string, 0, len(h.units))
	for name := range h.units {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Journal returns the configured dispatch journal, or nil.
func (h *Hub) Journal() journal.Journal { return h.journal }

// Register inserts or replaces the unit under name. Replacing releases
// the prior unit; registration never fails.
func (h *Hub) Register(name string, u Unit) {
	h.units[name] = u
}

// SetConfig merges partial into the hub's configuration key by key:
// colliding keys are overwritten, new keys added, absent keys untouched.
func (h *Hub) SetConfig(partial map[string]any) {
	for key, val := range partial {
		h.config[key] = val
	}
}

// Config returns a copy of the current configuration.
func (h *Hub) Config() map[string]any {
	out := make(map[string]any, len(h.config))
	for key, val := range h.config {
		out[key] = val
	}
	return out
}

// Dispatch forwards input to the unit registered under name and returns
// its result verbatim. Unit errors propagate unchanged; an unregistered
// name fails with ErrUnitNotFound. When a journal is configured, each
// successful dispatch is recorded and an append failure is returned to
// the caller.
func (h *Hub) Dispatch(ctx context.Context, name string, input any) (Result, error) {
	unit, ok := h.units[name]
	if !ok {
		return nil, fmt.Errorf("dispatch %q: %w", name, internalerr.ErrUnitNotFound)
	}

	res, err := unit.Transform(input)
	if err != nil {
		return nil, err
	}

	if h.journal != nil {
		run := journal.Run{
			ID:        ulid.MustNew(ulid.Now(), h.entropy).String(),
			Unit:      name,
			Input:     fmt.Sprint(input),
			Result:    res,
			CreatedAt: time.Now().UTC(),
		}
		if err := h.journal.Append(ctx, run); err != nil {
			return nil, fmt.Errorf("journal dispatch: %w", err)
		}
	}

	return res, nil
}

// createdAtLayout is ISO-8601 in UTC with no timezone offset.
const createdAtLayout = "2006-01-02T15:04:05"

// persistedState is the on-disk snapshot. The components field is
// informational only and ignored on load.
type persistedState struct {
	Name       string         `json:"name"`
	CreatedAt  string         `json:"created_at"`
	Config     map[string]any `json:"config"`
	Components []string       `json:"components"`
}

// SaveConfig writes the hub's identity, configuration and unit names to
// path as indented JSON, overwriting any existing file.
func (h *Hub) SaveConfig(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	defer f.Close()

	state := persistedState{
		Name:       h.name,
		CreatedAt:  h.createdAt.UTC().Format(createdAtLayout),
		Config:     h.config,
		Components: h.UnitNames(),
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	if err := enc.Encode(state); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// LoadConfig reads a snapshot from path and replaces the hub's
// configuration wholesale with the snapshot's config field. Name,
// creation timestamp and registered units are untouched. Content that
// does not parse, or that lacks the config field, fails with
// ErrMalformedData and leaves the prior configuration unchanged.
func (h *Hub) LoadConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var raw struct {
		Config json.RawMessage `json:"config"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("load config %s: %w: %v", path, internalerr.ErrMalformedData, err)
	}
	if len(raw.Config) == 0 || string(raw.Config) == "null" {
		return fmt.Errorf("load config %s: missing config field: %w", path, internalerr.ErrMalformedData)
	}

	config := make(map[string]any)
	if err := json.Unmarshal(raw.Config, &config); err != nil {
		return fmt.Errorf("load config %s: %w: %v", path, internalerr.ErrMalformedData, err)
	}

	h.config = config
	return nil
}
