package models

import (
	"sync"
	"time"
)

// ClientPresence records where a named client currently is.
type ClientPresence struct {
	Destination string
	JoinedAt    time.Time
}

// TrackingTable maps client display names to presence metadata. It is shared
// across every listen server so name collisions are visible fleet-wide.
type TrackingTable struct {
	sync.RWMutex
	names map[string]ClientPresence
}

func NewTrackingTable() *TrackingTable {
	return &TrackingTable{
		names: make(map[string]ClientPresence),
	}
}

// Track records presence for name. It returns false if the name was already
// tracked, which callers treat as a cross-server name collision.
func (t *TrackingTable) Track(name string, presence ClientPresence) bool {
	t.Lock()
	defer t.Unlock()
	if _, ok := t.names[name]; ok {
		return false
	}
	t.names[name] = presence
	return true
}

func (t *TrackingTable) Remove(name string) {
	t.Lock()
	defer t.Unlock()
	delete(t.names, name)
}

func (t *TrackingTable) Lookup(name string) (ClientPresence, bool) {
	t.RLock()
	defer t.RUnlock()
	presence, ok := t.names[name]
	return presence, ok
}

func (t *TrackingTable) Snapshot() map[string]ClientPresence {
	t.RLock()
	defer t.RUnlock()
	snapshot := make(map[string]ClientPresence, len(t.names))
	for name, presence := range t.names {
		snapshot[name] = presence
	}
	return snapshot
}

func (t *TrackingTable) Size() int {
	t.RLock()
	defer t.RUnlock()
	return len(t.names)
}
