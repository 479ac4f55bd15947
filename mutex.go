package wfemutex

import (
	"time"

	"github.com/joeycumines/go-wfemutex/internal/atomicword"
	"github.com/joeycumines/go-wfemutex/internal/debugcheck"
)

const (
	mutexUnlocked uint32 = 0
	mutexLocked   uint32 = 1
)

// Mutex is a mutual-exclusion lock built on the package's wait primitives
// instead of a futex syscall. Its zero value is an unlocked mutex, matching
// sync.Mutex. It is best suited to very short critical sections on hosts
// with a hardware monitor/wait instruction; on a spin-only host it degrades
// to a busy-wait, which is rarely a good trade against sync.Mutex.
//
// A Mutex must not be copied after first use.
type Mutex struct {
	state uint32
}

// TryLock acquires the lock without blocking, reporting whether it
// succeeded.
func (m *Mutex) TryLock() bool {
	return atomicword.CompareAndSwap(&m.state, mutexUnlocked, mutexLocked)
}

// Lock blocks until the lock is acquired, requesting the fastest wake-up the
// back-end can offer.
func (m *Mutex) Lock() {
	m.lock(false)
}

// LockLowPower is Lock, but requests the back-end's deepest supported idle
// state while waiting, trading wake-up latency for power efficiency.
func (m *Mutex) LockLowPower() {
	m.lock(true)
}

func (m *Mutex) lock(lowPower bool) {
	for !m.TryLock() {
		WaitForValue(&m.state, mutexUnlocked, lowPower)
	}
}

// TryLockTimeout blocks until the lock is acquired or timeout elapses,
// reporting which happened. lowPower requests the back-end's deepest
// supported idle state while waiting, as with LockLowPower.
func (m *Mutex) TryLockTimeout(timeout time.Duration, lowPower bool) bool {
	deadline := time.Now().Add(timeout)
	for {
		if m.TryLock() {
			return true
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return false
		}
		if !WaitForValueTimeout(&m.state, mutexUnlocked, uint64(remaining), lowPower) {
			return false
		}
	}
}

// Unlock releases the lock. Unlocking a Mutex that isn't locked, or that's
// held by a different goroutine, is a programming error. The wfemutex_debug
// build tag turns unlocking a Mutex that isn't locked into a logged, fatal
// diagnostic; the owning goroutine is not tracked, so an unlock by a
// different goroutine is not detected. Outside that build tag this is a
// plain release-store, no CAS, and misuse silently leaves the lock unlocked.
func (m *Mutex) Unlock() {
	if debugcheck.Enabled {
		wasLocked := atomicword.CompareAndSwap(&m.state, mutexLocked, mutexUnlocked)
		debugcheck.Assert(`Mutex.Unlock`, wasLocked, `unlock of a mutex that was not locked`)
		return
	}
	atomicword.Store(&m.state, mutexUnlocked)
}
