package service

import (
	"context"
	"sync"
)

// Locker serializes work on a key
// Lock blocks until the key is free or ctx is done. The returned func releases the key.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

type memoryLock struct {
	ch   chan struct{}
	refs int
}

// MemoryLocker is a Locker for a single process
type MemoryLocker struct {
	mu    sync.Mutex
	locks map[string]*memoryLock
}

// NewMemoryLocker returns a MemoryLocker
func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{
		locks: make(map[string]*memoryLock),
	}
}

// Lock implements Locker
func (m *MemoryLocker) Lock(ctx context.Context, key string) (func(), error) {
	m.mu.Lock()
	l, ok := m.locks[key]
	if !ok {
		l = &memoryLock{ch: make(chan struct{}, 1)}
		m.locks[key] = l
	}
	l.refs++
	m.mu.Unlock()

	select {
	case l.ch <- struct{}{}:
	case <-ctx.Done():
		m.release(key, l)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-l.ch
			m.release(key, l)
		})
	}, nil
}

// release drops a reference and forgets the key once nobody holds or waits for it
func (m *MemoryLocker) release(key string, l *memoryLock) {
	m.mu.Lock()
	defer m.mu.Unlock()

	l.refs--
	if l.refs == 0 {
		delete(m.locks, key)
	}
}
