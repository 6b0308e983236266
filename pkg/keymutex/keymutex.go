package keymutex

import (
	"context"
	"sync"
)

// Mutex набор взаимоисключающих блокировок по ключу (id варианта)
// Блокировки для разных ключей независимы; ожидание ограничено контекстом вызывающего.
// Ключи без ожидающих не занимают память.
type Mutex struct {
	mu      sync.Mutex
	entries map[int64]*entry
}

type entry struct {
	sem  chan struct{} // семафор емкости 1
	refs int           // держатель + ожидающие
}

// New создает пустой набор блокировок
func New() *Mutex {
	return &Mutex{entries: make(map[int64]*entry)}
}

// Lock захватывает блокировку по ключу
// Если контекст отменяется или истекает до захвата, возвращает ctx.Err()
func (m *Mutex) Lock(ctx context.Context, key int64) error {
	m.mu.Lock()
	e, ok := m.entries[key]
	if !ok {
		e = &entry{sem: make(chan struct{}, 1)}
		m.entries[key] = e
	}
	e.refs++
	m.mu.Unlock()

	select {
	case e.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		m.release(key, e)
		return ctx.Err()
	}
}

// Unlock освобождает блокировку по ключу
// Вызов без предшествующего успешного Lock — ошибка программирования
func (m *Mutex) Unlock(key int64) {
	m.mu.Lock()
	e, ok := m.entries[key]
	m.mu.Unlock()
	if !ok {
		panic("keymutex: unlock of unlocked key")
	}
	<-e.sem
	m.release(key, e)
}

func (m *Mutex) release(key int64, e *entry) {
	m.mu.Lock()
	e.refs--
	if e.refs == 0 {
		delete(m.entries, key)
	}
	m.mu.Unlock()
}
