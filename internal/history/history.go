package history

import (
	"sync"
	"time"

	"github.com/quillmd/quill/internal/logger"
	"github.com/quillmd/quill/internal/types"
)

const DefaultCapacity = 100

// Snapshot is one recorded (content, selection, timestamp) state.
// Immutable once recorded.
type Snapshot struct {
	Content   string
	Selection types.Selection
	When      time.Time
}

// Store keeps a bounded sequence of snapshots with an undo/redo cursor.
// The capacity bound is structural: snapshots live in a fixed-size ring and
// recording past capacity overwrites the oldest entry.
type Store struct {
	mu    sync.Mutex
	ring  []Snapshot
	head  int // ring slot of the oldest snapshot
	count int
	index int // logical position of the materialized snapshot; -1 when empty
}

// NewStore creates a store bounded at the given capacity.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		ring:  make([]Snapshot, capacity),
		index: -1,
	}
}

func (s *Store) at(logical int) Snapshot {
	return s.ring[(s.head+logical)%len(s.ring)]
}

// Record adds a snapshot of the given state, discarding any redo branch.
// When the store is full the oldest snapshot is evicted.
func (s *Store) Record(content string, sel types.Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A new edit after an undo kills the redo future.
	if s.index < s.count-1 {
		s.count = s.index + 1
	}

	if s.count == len(s.ring) {
		s.head = (s.head + 1) % len(s.ring)
		s.count--
		s.index--
	}

	s.ring[(s.head+s.count)%len(s.ring)] = Snapshot{
		Content:   content,
		Selection: sel,
		When:      time.Now(),
	}
	s.count++
	s.index = s.count - 1

	logger.Debugf("History: recorded snapshot. index=%d count=%d", s.index, s.count)
}

// Undo steps the cursor back and returns the snapshot to materialize.
// At the oldest snapshot it returns (zero, false); not an error.
func (s *Store) Undo() (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index <= 0 {
		logger.Debugf("History: nothing to undo")
		return Snapshot{}, false
	}
	s.index--
	return s.at(s.index), true
}

// Redo steps the cursor forward and returns the snapshot to materialize.
// At the newest snapshot it returns (zero, false); not an error.
func (s *Store) Redo() (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index >= s.count-1 {
		logger.Debugf("History: nothing to redo")
		return Snapshot{}, false
	}
	s.index++
	return s.at(s.index), true
}

// Clear empties the store. Call on new-file and open-file.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.head = 0
	s.count = 0
	s.index = -1
	logger.Debugf("History: cleared")
}

// CanUndo reports whether an earlier snapshot is reachable.
func (s *Store) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index > 0
}

// CanRedo reports whether a later snapshot is reachable.
func (s *Store) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index < s.count-1
}

// Len returns the number of snapshots currently held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}
