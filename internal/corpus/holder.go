package corpus

import "sync/atomic"

// Holder publishes the current Snapshot to concurrent readers. Load is
// lock-free; Swap replaces the whole snapshot in one step. A nil Load means
// no corpus has been loaded yet.
type Holder struct {
	current atomic.Pointer[Snapshot]
}

// NewHolder returns an empty Holder.
func NewHolder() *Holder {
	return &Holder{}
}

// Load returns the currently published snapshot, or nil before the first Swap.
func (h *Holder) Load() *Snapshot {
	return h.current.Load()
}

// Swap publishes snap as the current snapshot.
func (h *Holder) Swap(snap *Snapshot) {
	h.current.Store(snap)
}
