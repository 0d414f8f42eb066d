package task

import "sync"

// Store owns the ordered in-memory task collection. IDs are derived from the
// current collection length, so a Reset implicitly restarts numbering at 1.
// The store is passed by reference to whoever needs it; there is no
// package-level instance.
type Store struct {
	mu    sync.Mutex
	tasks []Task
}

// NewStore creates an empty task collection.
func NewStore() *Store {
	return &Store{tasks: []Task{}}
}

// Append validates a manual entry and appends it with the next sequential id.
// Invalid input mutates nothing.
func (s *Store) Append(in Input) (Task, error) {
	t, err := NewTask(in)
	if err != nil {
		return Task{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = len(s.tasks) + 1
	s.tasks = append(s.tasks, t)
	return t, nil
}

// AppendBatch appends bulk-imported records in order. Ids continue
// contiguously from the current count, assigned record-by-record; any id
// carried by the raw record is discarded.
func (s *Store) AppendBatch(raws []RawTask) []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	added := make([]Task, 0, len(raws))
	for _, raw := range raws {
		t := raw.normalize()
		t.ID = len(s.tasks) + 1
		s.tasks = append(s.tasks, t)
		added = append(added, t)
	}
	return added
}

// Snapshot returns a copy of the collection in insertion order.
func (s *Store) Snapshot() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Reset empties the collection. It always succeeds.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = s.tasks[:0]
}

// Len returns the current number of tasks.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}
