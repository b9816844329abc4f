package utils

import (
	"sync"
)

// OptionalRWMutex guards state that callers may choose to synchronize themselves. The zero value
// does no locking; use NewOptionalRWMutex to get a real lock.
type OptionalRWMutex struct {
	mutex *sync.RWMutex
}

// NewOptionalRWMutex returns a lock that is real if enabled is true and a no-op otherwise
func NewOptionalRWMutex(enabled bool) OptionalRWMutex {
	if !enabled {
		return OptionalRWMutex{}
	}
	return OptionalRWMutex{mutex: &sync.RWMutex{}}
}

// Enabled returns true if the lock does anything
func (m OptionalRWMutex) Enabled() bool {
	return m.mutex != nil
}

func (m OptionalRWMutex) Lock() {
	if m.mutex != nil {
		m.mutex.Lock()
	}
}

func (m OptionalRWMutex) Unlock() {
	if m.mutex != nil {
		m.mutex.Unlock()
	}
}

func (m OptionalRWMutex) RLock() {
	if m.mutex != nil {
		m.mutex.RLock()
	}
}

func (m OptionalRWMutex) RUnlock() {
	if m.mutex != nil {
		m.mutex.RUnlock()
	}
}
