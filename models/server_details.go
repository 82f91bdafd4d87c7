package models

import "sync"

// ServerDetails holds per-destination runtime counters, updated by the
// listen server owning the connection.
type ServerDetails struct {
	ClientCount int
}

// ServerDetailsRegistry keys ServerDetails by destination name. Entries are
// created when a destination first appears and are never pruned; a
// destination removed from the topology leaves its last counters behind.
type ServerDetailsRegistry struct {
	sync.RWMutex
	details map[string]*ServerDetails
}

func NewServerDetailsRegistry() *ServerDetailsRegistry {
	return &ServerDetailsRegistry{
		details: make(map[string]*ServerDetails),
	}
}

// Ensure creates the entry for name if it does not exist yet.
func (r *ServerDetailsRegistry) Ensure(name string) {
	r.Lock()
	defer r.Unlock()
	if _, ok := r.details[name]; !ok {
		r.details[name] = &ServerDetails{}
	}
}

func (r *ServerDetailsRegistry) IncrementClientCount(name string) {
	r.Lock()
	defer r.Unlock()
	if _, ok := r.details[name]; !ok {
		r.details[name] = &ServerDetails{}
	}
	r.details[name].ClientCount++
}

func (r *ServerDetailsRegistry) DecrementClientCount(name string) {
	r.Lock()
	defer r.Unlock()
	if details, ok := r.details[name]; ok && details.ClientCount > 0 {
		details.ClientCount--
	}
}

func (r *ServerDetailsRegistry) ClientCount(name string) int {
	r.RLock()
	defer r.RUnlock()
	if details, ok := r.details[name]; ok {
		return details.ClientCount
	}
	return 0
}

func (r *ServerDetailsRegistry) Snapshot() map[string]ServerDetails {
	r.RLock()
	defer r.RUnlock()
	snapshot := make(map[string]ServerDetails, len(r.details))
	for name, details := range r.details {
		snapshot[name] = *details
	}
	return snapshot
}
