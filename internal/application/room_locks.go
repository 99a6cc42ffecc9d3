package application

import (
	"sync"

	"github.com/google/uuid"
)

// roomLocks serializes check-and-insert per room id. Without it, two
// concurrent requests can both pass the availability check and both insert
// overlapping bookings.
type roomLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newRoomLocks() *roomLocks {
	return &roomLocks{locks: make(map[uuid.UUID]*sync.Mutex)}
}

// acquire locks the mutex for the room and returns it; the caller must
// Unlock when the check-and-insert window closes.
func (l *roomLocks) acquire(roomID uuid.UUID) *sync.Mutex {
	l.mu.Lock()
	m, ok := l.locks[roomID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[roomID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m
}
