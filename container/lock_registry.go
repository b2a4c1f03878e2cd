package container

import (
	"sync"

	"github.com/google/uuid"
)

type lockRegistry struct {
	locks sync.Map
}

var lr *lockRegistry
var once sync.Once

func LockRegistry() *lockRegistry {
	once.Do(func() {
		lr = &lockRegistry{}
	})
	return lr
}

func (r *lockRegistry) Get(containerId uuid.UUID) *sync.RWMutex {
	val, _ := r.locks.LoadOrStore(containerId, &sync.RWMutex{})
	if mtx, ok := val.(*sync.RWMutex); ok {
		return mtx
	}
	mtx := &sync.RWMutex{}
	r.locks.Store(containerId, mtx)
	return mtx
}

func (r *lockRegistry) Delete(containerId uuid.UUID) {
	r.locks.Delete(containerId)
}
