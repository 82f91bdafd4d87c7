package models

import "sync"

// DestinationRegistry indexes every declared destination by name, fleet-wide.
// A destination name maps to at most one live Destination; re-declaring a
// name overwrites the entry.
type DestinationRegistry struct {
	sync.RWMutex
	destinations map[string]Destination
}

func NewDestinationRegistry() *DestinationRegistry {
	return &DestinationRegistry{
		destinations: make(map[string]Destination),
	}
}

func (r *DestinationRegistry) Register(destination Destination) {
	r.Lock()
	defer r.Unlock()
	r.destinations[destination.Name] = destination
}

func (r *DestinationRegistry) Get(name string) (Destination, bool) {
	r.RLock()
	defer r.RUnlock()
	destination, ok := r.destinations[name]
	return destination, ok
}

func (r *DestinationRegistry) Names() []string {
	r.RLock()
	defer r.RUnlock()
	names := make([]string, 0, len(r.destinations))
	for name := range r.destinations {
		names = append(names, name)
	}
	return names
}

func (r *DestinationRegistry) Snapshot() map[string]Destination {
	r.RLock()
	defer r.RUnlock()
	snapshot := make(map[string]Destination, len(r.destinations))
	for name, destination := range r.destinations {
		snapshot[name] = destination
	}
	return snapshot
}

func (r *DestinationRegistry) Size() int {
	r.RLock()
	defer r.RUnlock()
	return len(r.destinations)
}
