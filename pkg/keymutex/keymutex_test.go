package keymutex

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockUnlock(t *testing.T) {
	m := New()
	ctx := context.Background()

	require.NoError(t, m.Lock(ctx, 1))
	m.Unlock(1)

	// Ключ без держателей не занимает память
	m.mu.Lock()
	assert.Empty(t, m.entries)
	m.mu.Unlock()
}

func TestDifferentKeysIndependent(t *testing.T) {
	m := New()
	ctx := context.Background()

	require.NoError(t, m.Lock(ctx, 1))

	// Блокировка другого ключа не ждет первую
	done := make(chan struct{})
	go func() {
		if err := m.Lock(ctx, 2); err == nil {
			m.Unlock(2)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on key 2 blocked by holder of key 1")
	}

	m.Unlock(1)
}

func TestLockTimeout(t *testing.T) {
	m := New()
	require.NoError(t, m.Lock(context.Background(), 1))
	defer m.Unlock(1)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := m.Lock(ctx, 1)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCancelledWaiterDoesNotLeak(t *testing.T) {
	m := New()
	require.NoError(t, m.Lock(context.Background(), 1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, m.Lock(ctx, 1))

	m.Unlock(1)

	m.mu.Lock()
	assert.Empty(t, m.entries)
	m.mu.Unlock()
}

func TestMutualExclusion(t *testing.T) {
	m := New()
	ctx := context.Background()

	const workers = 16
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := m.Lock(ctx, 7); err != nil {
				return
			}
			defer m.Unlock(7)
			// Критическая секция: без блокировки тут была бы гонка
			v := counter
			time.Sleep(time.Millisecond)
			counter = v + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestUnlockWithoutLockPanics(t *testing.T) {
	m := New()
	assert.Panics(t, func() { m.Unlock(1) })
}
