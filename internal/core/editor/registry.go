package editor

import (
	"sync"
)

type slot struct {
	mu     sync.Mutex
	editor *Editor
}

// Registry owns one Editor per user and runs the commands of each user one at a time.
type Registry struct {
	mu    sync.Mutex
	deps  Deps
	slots map[string]*slot
}

// NewRegistry creates a registry whose editors use deps.
func NewRegistry(deps Deps) *Registry {
	return &Registry{deps: deps, slots: make(map[string]*slot)}
}

// Do runs fn with the editor of userID, creating an idle one on first use. Calls for
// the same user are serialized; fn must not call Do for that user again.
func (r *Registry) Do(userID string, fn func(*Editor) error) error {
	s := r.slot(userID)
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.editor)
}

// Snapshot returns the state of userID's editor.
func (r *Registry) Snapshot(userID string) Snapshot {
	var snap Snapshot
	_ = r.Do(userID, func(e *Editor) error {
		snap = e.Snapshot()
		return nil
	})
	return snap
}

// Forget drops the editor of userID. A command already running finishes on the old
// editor; a later Do starts from a new idle one.
func (r *Registry) Forget(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots, userID)
}

// Len is the number of users with an editor.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.slots)
}

func (r *Registry) slot(userID string) *slot {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[userID]
	if !ok {
		s = &slot{editor: NewEditor(userID, r.deps)}
		r.slots[userID] = s
	}
	return s
}
