package life

import "sync"

// Shared guards an Engine for hosts that read state on one goroutine while
// another drives Update. Update holds the write lock for the whole
// read-then-replace, so readers see either the old or the new generation.
type Shared struct {
	mu  sync.RWMutex
	eng *Engine
}

// NewShared wraps eng. Callers must not use eng directly afterwards.
func NewShared(eng *Engine) *Shared {
	return &Shared{eng: eng}
}

// Update advances the wrapped engine by one generation.
func (s *Shared) Update() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eng.Update()
}

// State returns the most recently published snapshot.
func (s *Shared) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.eng.State()
}

// Replace swaps in a freshly seeded engine, e.g. after a reseed.
func (s *Shared) Replace(eng *Engine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eng = eng
}
