package wfemutex

import (
	"time"

	"github.com/joeycumines/go-wfemutex/internal/atomicword"
	"github.com/joeycumines/go-wfemutex/internal/debugcheck"
)

// rwMutexWriter is the high bit of RWMutex.state: set while a writer holds
// the lock, and while readers are barred from acquiring (they still spin
// past in-flight readers, only a writer blocks them). The remaining 31 bits
// count active readers, matching the original source's single-word
// ReaderWriterLock layout.
const rwMutexWriter uint32 = 1 << 31

// RWMutex is a reader/writer mutual-exclusion lock, the RWMutex-shaped
// counterpart to Mutex: a single uint32 packs a writer-held flag and a
// reader count, so TryLock is one compare-and-swap and TryRLock a
// compare-and-swap retried until it succeeds or a writer is seen.
//
// A RWMutex must not be copied after first use. Its zero value is an
// unlocked RWMutex, matching sync.RWMutex.
type RWMutex struct {
	state uint32
}

// TryRLock acquires a read lock without blocking, reporting whether it
// succeeded; it fails only while a writer holds the lock. A writer waiting
// in Lock does not bar new readers.
func (rw *RWMutex) TryRLock() bool {
	for {
		v := atomicword.Load(&rw.state)
		if v&rwMutexWriter != 0 {
			return false
		}
		if atomicword.CompareAndSwap(&rw.state, v, v+1) {
			return true
		}
	}
}

// RLock blocks until a read lock is acquired.
func (rw *RWMutex) RLock() {
	rw.rLock(false)
}

// RLockLowPower is RLock, but requests the back-end's deepest supported idle
// state while waiting.
func (rw *RWMutex) RLockLowPower() {
	rw.rLock(true)
}

func (rw *RWMutex) rLock(lowPower bool) {
	for !rw.TryRLock() {
		WaitForBitClear(&rw.state, 31, lowPower)
	}
}

// RUnlock releases a read lock. Calling RUnlock without a matching RLock (or
// more times than matching RLocks) is a programming error; see Mutex.Unlock
// for how wfemutex_debug handles that.
func (rw *RWMutex) RUnlock() {
	prev := atomicword.Sub(&rw.state, 1) + 1
	debugcheck.Assert(`RWMutex.RUnlock`, prev != 0 && prev&rwMutexWriter == 0, `runlock without a matching rlock`)
}

// TryLock acquires a write lock without blocking, reporting whether it
// succeeded; it fails if any readers or another writer hold the lock.
func (rw *RWMutex) TryLock() bool {
	return atomicword.CompareAndSwap(&rw.state, 0, rwMutexWriter)
}

// Lock blocks until a write lock is acquired.
func (rw *RWMutex) Lock() {
	rw.lock(false)
}

// LockLowPower is Lock, but requests the back-end's deepest supported idle
// state while waiting.
func (rw *RWMutex) LockLowPower() {
	rw.lock(true)
}

func (rw *RWMutex) lock(lowPower bool) {
	for !rw.TryLock() {
		WaitForValue(&rw.state, 0, lowPower)
	}
}

// TryLockTimeout blocks until a write lock is acquired or timeout elapses,
// reporting which happened. lowPower requests the back-end's deepest
// supported idle state while waiting, as with LockLowPower.
func (rw *RWMutex) TryLockTimeout(timeout time.Duration, lowPower bool) bool {
	deadline := time.Now().Add(timeout)
	for {
		if rw.TryLock() {
			return true
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return false
		}
		if !WaitForValueTimeout(&rw.state, 0, uint64(remaining), lowPower) {
			return false
		}
	}
}

// Unlock releases a write lock. Unlocking a RWMutex with no write lock held
// is a programming error; see Mutex.Unlock for how wfemutex_debug handles
// that, including the release-build plain-store fast path.
func (rw *RWMutex) Unlock() {
	if debugcheck.Enabled {
		wasWriter := atomicword.CompareAndSwap(&rw.state, rwMutexWriter, 0)
		debugcheck.Assert(`RWMutex.Unlock`, wasWriter, `unlock of a write lock that was not held`)
		return
	}
	atomicword.Store(&rw.state, 0)
}
