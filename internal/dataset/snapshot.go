package dataset

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/devkami/kami-sales-dashboard/internal/model"
)

// Snapshot is an immutable view of the base table at one point in time.
// Lines keeps the sanitized line-level rows; Orders is the order-level
// dedup of the same rows. Nothing mutates a snapshot after construction,
// so aggregations over it need no locking.
type Snapshot struct {
	ID       string
	LoadedAt time.Time
	Lines    []model.OrderLine
	Orders   []model.Order
}

// NewSnapshot builds a snapshot from sanitized lines.
func NewSnapshot(lines []model.OrderLine) *Snapshot {
	return &Snapshot{
		ID:       uuid.NewString(),
		LoadedAt: time.Now(),
		Lines:    lines,
		Orders:   DedupByOrder(lines),
	}
}

// Loader supplies the current raw table contents, sanitized.
type Loader func() ([]model.OrderLine, error)

// Holder guards the current snapshot and swaps in a fresh one on Refresh.
// Readers always see a complete snapshot; there is no in-place update.
type Holder struct {
	mu      sync.RWMutex
	current *Snapshot
	load    Loader
}

// NewHolder creates a holder around a loader. The holder starts empty;
// call Refresh to load the first snapshot.
func NewHolder(load Loader) *Holder {
	return &Holder{load: load}
}

// Current returns the active snapshot, or an empty one before the first
// refresh so callers can aggregate without nil checks.
func (h *Holder) Current() *Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.current == nil {
		return &Snapshot{ID: "", Lines: nil, Orders: nil}
	}
	return h.current
}

// Refresh rebuilds the snapshot wholesale from the loader and swaps it in.
func (h *Holder) Refresh() (*Snapshot, error) {
	lines, err := h.load()
	if err != nil {
		return nil, err
	}
	snap := NewSnapshot(lines)

	h.mu.Lock()
	h.current = snap
	h.mu.Unlock()

	return snap, nil
}
