package sales

import "sync"

// identityLocks serializes sale registrations per identity tuple. Without it
// two concurrent requests for the same copy can both pass the availability
// check and both append a sale row. The map grows with the number of distinct
// identities sold, which is bounded by the catalog.
type identityLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// acquire locks the mutex for key and returns its release func.
func (l *identityLocks) acquire(key string) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*sync.Mutex)
	}
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
