package usecase_recommendation

import (
	"sync"

	"github.com/google/uuid"
)

// LocalLocker serializes recommendations per room inside one process.
type LocalLocker struct {
	mu     sync.Mutex
	holder map[uuid.UUID]string
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{holder: make(map[uuid.UUID]string)}
}

func (l *LocalLocker) Acquire(roomID uuid.UUID) (string, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, held := l.holder[roomID]; held {
		return "", false, nil
	}
	token := uuid.NewString()
	l.holder[roomID] = token
	return token, true, nil
}

func (l *LocalLocker) Release(roomID uuid.UUID, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.holder[roomID] == token {
		delete(l.holder, roomID)
	}
	return nil
}
