package wfemutex

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMutexTryLock(t *testing.T) {
	var m Mutex
	assert.True(t, m.TryLock())
	assert.False(t, m.TryLock(), "a second TryLock must fail while held")
	m.Unlock()
	assert.True(t, m.TryLock(), "TryLock must succeed again after Unlock")
}

func TestMutexZeroValueUnlocked(t *testing.T) {
	var m Mutex
	assert.True(t, m.TryLock(), "the zero value must be unlocked")
}

func TestMutexLockBlocksUntilUnlock(t *testing.T) {
	var m Mutex
	m.Lock()

	unlocked := make(chan struct{})
	acquired := make(chan struct{})
	go func() {
		m.Lock()
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("second Lock returned before the first Unlock")
	case <-time.After(20 * time.Millisecond):
	}

	close(unlocked)
	m.Unlock()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second Lock never observed the Unlock")
	}
	<-unlocked
}

func TestMutexTryLockTimeout(t *testing.T) {
	var m Mutex
	m.Lock()

	start := time.Now()
	ok := m.TryLockTimeout(30*time.Millisecond, false)
	elapsed := time.Since(start)

	assert.False(t, ok)
	assert.GreaterOrEqual(t, elapsed, 25*time.Millisecond)
}

func TestMutexMutualExclusion(t *testing.T) {
	var m Mutex
	var counter int
	var wg sync.WaitGroup

	const goroutines = 8
	const perGoroutine = 200

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				m.Lock()
				counter++
				m.Unlock()
			}
		}()
	}

	wg.Wait()
	assert.Equal(t, goroutines*perGoroutine, counter)
}
