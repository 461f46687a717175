// Package snaptest provides a recording handler to inspect collected
// snapshots in tests.
package snaptest

import (
	"sync"
	"time"

	"github.com/memsnap/memsnap"
)

var _ memsnap.Handler = (*Handler)(nil)

// Handler records every snapshot it receives.
type Handler struct {
	sync.Mutex
	snapshots []*memsnap.Snapshot
}

// HandleSnapshot appends snap to the recorded snapshots.
func (h *Handler) HandleSnapshot(_ time.Time, snap *memsnap.Snapshot) {
	h.Lock()
	h.snapshots = append(h.snapshots, snap)
	h.Unlock()
}

// Snapshots returns a copy of the recorded snapshots.
func (h *Handler) Snapshots() []*memsnap.Snapshot {
	h.Lock()
	snapshots := make([]*memsnap.Snapshot, len(h.snapshots))
	copy(snapshots, h.snapshots)
	h.Unlock()
	return snapshots
}

// Clear drops the recorded snapshots.
func (h *Handler) Clear() {
	h.Lock()
	h.snapshots = nil
	h.Unlock()
}
