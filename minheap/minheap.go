package minheap

import (
	"errors"
	"fmt"
)

// rootSlot is the slot holding the minimum entry.
const rootSlot = 1

// absent marks an identity that currently occupies no slot.
const absent = 0

// Sentinel errors returned by IndexedMinHeap.
var (
	// ErrBadCapacity indicates New was called with a negative capacity.
	ErrBadCapacity = errors.New("minheap: capacity must be non-negative")

	// ErrIDOutOfRange indicates an identity outside [0, capacity).
	ErrIDOutOfRange = errors.New("minheap: identity out of range")

	// ErrDuplicateID indicates Insert of an identity that is already present.
	ErrDuplicateID = errors.New("minheap: identity already present")

	// ErrFull indicates Insert on a heap already holding capacity entries.
	ErrFull = errors.New("minheap: heap is full")

	// ErrCorrupt indicates Validate found a heap-order or map-consistency violation.
	ErrCorrupt = errors.New("minheap: invariant violated")
)

// Entry is one (priority, identity) pair.
type Entry struct {
	Priority int64
	ID       int
}

// IndexedMinHeap is a binary min-heap keyed by dense integer identities.
type IndexedMinHeap struct {
	arr  []Entry // arr[1..size] are occupied; arr[0] is unused
	pos  []int   // pos[id] = slot of id, or absent
	size int
}

// New returns an empty heap over identities [0, capacity).
func New(capacity int) (*IndexedMinHeap, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCapacity, capacity)
	}

	return &IndexedMinHeap{
		arr: make([]Entry, capacity+1),
		pos: make([]int, capacity),
	}, nil
}

// Len returns the number of entries currently in the heap.
func (h *IndexedMinHeap) Len() int { return h.size }

// Cap returns the identity capacity the heap was created with.
func (h *IndexedMinHeap) Cap() int { return len(h.pos) }

// IsEmpty reports whether the heap holds no entries. A nil heap is empty.
func (h *IndexedMinHeap) IsEmpty() bool { return h == nil || h.size == 0 }

// Contains reports whether id currently occupies a slot.
func (h *IndexedMinHeap) Contains(id int) bool {
	return h.validID(id) && h.pos[id] != absent
}

// Insert appends (priority, id) at the next free slot and bubbles it up.
//
// Errors: ErrIDOutOfRange, ErrDuplicateID, ErrFull. On error the heap is unchanged.
func (h *IndexedMinHeap) Insert(priority int64, id int) error {
	if !h.validID(id) {
		return fmt.Errorf("%w: %d (capacity %d)", ErrIDOutOfRange, id, len(h.pos))
	}
	if h.pos[id] != absent {
		return fmt.Errorf("%w: %d", ErrDuplicateID, id)
	}
	if h.size == len(h.pos) {
		return ErrFull
	}

	h.size++
	h.arr[h.size] = Entry{Priority: priority, ID: id}
	h.pos[id] = h.size
	h.bubbleUp(h.size)

	return nil
}

// Peek returns the minimum entry without removing it.
// ok is false when the heap is empty.
func (h *IndexedMinHeap) Peek() (e Entry, ok bool) {
	if h.IsEmpty() {
		return Entry{}, false
	}

	return h.arr[rootSlot], true
}

// ExtractMin removes and returns the minimum entry.
// ok is false when the heap is empty.
func (h *IndexedMinHeap) ExtractMin() (e Entry, ok bool) {
	if h.IsEmpty() {
		return Entry{}, false
	}
	minEntry := h.arr[rootSlot]

	last := h.size
	h.swap(rootSlot, last)
	h.pos[minEntry.ID] = absent
	h.arr[last] = Entry{}
	h.size--
	h.bubbleDown(rootSlot)

	return minEntry, true
}

// Priority returns the current priority of id.
// ok is false when id is out of range or absent.
func (h *IndexedMinHeap) Priority(id int) (p int64, ok bool) {
	if !h.Contains(id) {
		return 0, false
	}

	return h.arr[h.pos[id]].Priority, true
}

// DecreasePriority lowers the priority of id to p and restores heap order.
// It returns false, leaving the heap unchanged, if id is absent or p is not
// strictly smaller than the current priority. A false result is the normal
// outcome of a relaxation that does not improve anything.
func (h *IndexedMinHeap) DecreasePriority(id int, p int64) bool {
	if !h.Contains(id) {
		return false
	}
	slot := h.pos[id]
	if p >= h.arr[slot].Priority {
		return false
	}
	h.arr[slot].Priority = p
	h.bubbleUp(slot)

	return true
}

// Entries returns a copy of the occupied slots in array order (slot 1 first).
func (h *IndexedMinHeap) Entries() []Entry {
	out := make([]Entry, h.size)
	copy(out, h.arr[rootSlot:h.size+1])

	return out
}

// Validate checks heap order and map consistency for every occupied slot,
// and that every identity not in the array is marked absent.
// It returns an error wrapping ErrCorrupt on the first violation found.
func (h *IndexedMinHeap) Validate() error {
	seen := 0
	for s := rootSlot; s <= h.size; s++ {
		e := h.arr[s]
		if !h.validID(e.ID) {
			return fmt.Errorf("%w: slot %d holds identity %d", ErrCorrupt, s, e.ID)
		}
		if h.pos[e.ID] != s {
			return fmt.Errorf("%w: identity %d at slot %d maps to slot %d", ErrCorrupt, e.ID, s, h.pos[e.ID])
		}
		if s > rootSlot && h.arr[parent(s)].Priority > e.Priority {
			return fmt.Errorf("%w: slot %d (priority %d) below parent slot %d (priority %d)",
				ErrCorrupt, s, e.Priority, parent(s), h.arr[parent(s)].Priority)
		}
	}
	for _, slot := range h.pos {
		if slot != absent {
			seen++
		}
	}
	if seen != h.size {
		return fmt.Errorf("%w: %d mapped identities for %d entries", ErrCorrupt, seen, h.size)
	}

	return nil
}

// swap exchanges slots i and j in both the array and the identity map.
// It is the only place entries move.
func (h *IndexedMinHeap) swap(i, j int) {
	h.arr[i], h.arr[j] = h.arr[j], h.arr[i]
	h.pos[h.arr[i].ID] = i
	h.pos[h.arr[j].ID] = j
}

// bubbleUp moves slot s toward the root while it is smaller than its parent.
func (h *IndexedMinHeap) bubbleUp(s int) {
	for s > rootSlot {
		p := parent(s)
		if h.arr[s].Priority >= h.arr[p].Priority {
			return
		}
		h.swap(s, p)
		s = p
	}
}

// bubbleDown moves slot s toward the leaves, swapping with the smaller
// child (left on ties) until heap order holds.
func (h *IndexedMinHeap) bubbleDown(s int) {
	for {
		smallest := s
		l, r := left(s), right(s)
		if l <= h.size && h.arr[l].Priority < h.arr[smallest].Priority {
			smallest = l
		}
		if r <= h.size && h.arr[r].Priority < h.arr[smallest].Priority {
			smallest = r
		}
		if smallest == s {
			return
		}
		h.swap(s, smallest)
		s = smallest
	}
}

func (h *IndexedMinHeap) validID(id int) bool {
	return h != nil && id >= 0 && id < len(h.pos)
}

func parent(s int) int { return s / 2 }
func left(s int) int   { return 2 * s }
func right(s int) int  { return 2*s + 1 }
