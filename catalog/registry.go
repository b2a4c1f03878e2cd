package catalog

import "sync"

type registry struct {
	lock    sync.RWMutex
	catalog *Model
}

var r *registry
var once sync.Once

// Registry holds the catalog in use by the service.
func Registry() *registry {
	once.Do(func() {
		r = &registry{}
	})
	return r
}

func (r *registry) Set(m Model) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.catalog = &m
}

// Get returns the configured catalog, or the embedded default when none was set.
func (r *registry) Get() Model {
	r.lock.RLock()
	defer r.lock.RUnlock()
	if r.catalog == nil {
		return Default()
	}
	return *r.catalog
}
