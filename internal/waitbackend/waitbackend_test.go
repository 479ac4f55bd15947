package waitbackend

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWaitForValueFastPath(t *testing.T) {
	var v uint32 = 7
	done := make(chan struct{})
	go func() {
		WaitForValue(Spin{}, &v, 7, false)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WaitForValue did not return on an already-satisfied condition")
	}
}

func TestWaitForValueWokenByWrite(t *testing.T) {
	var v uint32
	released := make(chan struct{})
	waiterDone := make(chan struct{})

	go func() {
		close(released)
		WaitForValue(Spin{}, &v, 1, false)
		close(waiterDone)
	}()

	<-released
	select {
	case <-waiterDone:
		t.Fatal("waiter returned before the value was set")
	case <-time.After(20 * time.Millisecond):
	}

	atomic.StoreUint32(&v, 1)
	select {
	case <-waiterDone:
	case <-time.After(time.Second):
		t.Fatal("waiter did not observe the write")
	}
}

func TestWaitForBitSetAndClear(t *testing.T) {
	var v uint32
	setDone := make(chan struct{})
	go func() {
		got := WaitForBitSet(Spin{}, &v, 3, false)
		assert.True(t, got&(1<<3) != 0)
		close(setDone)
	}()
	time.Sleep(10 * time.Millisecond)
	atomic.StoreUint32(&v, 1<<3)
	select {
	case <-setDone:
	case <-time.After(time.Second):
		t.Fatal("WaitForBitSet did not observe the bit being set")
	}

	clearDone := make(chan struct{})
	go func() {
		got := WaitForBitClear(Spin{}, &v, 3, false)
		assert.True(t, got&(1<<3) == 0)
		close(clearDone)
	}()
	time.Sleep(10 * time.Millisecond)
	atomic.StoreUint32(&v, 0)
	select {
	case <-clearDone:
	case <-time.After(time.Second):
		t.Fatal("WaitForBitClear did not observe the bit being cleared")
	}
}

func TestWaitForValueTimeoutExpires(t *testing.T) {
	var v uint32
	ok := WaitForValueTimeout(Spin{}, &v, 1, uint64(30*time.Millisecond), false)
	assert.False(t, ok)
}

func TestWaitForValueTimeoutSucceeds(t *testing.T) {
	var v uint32
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		time.Sleep(5 * time.Millisecond)
		atomic.StoreUint32(&v, 1)
	}()
	ok := WaitForValueTimeout(Spin{}, &v, 1, uint64(2*time.Second), false)
	assert.True(t, ok)
	wg.Wait()
}

func TestWaitForValueSpuriousOneshot(t *testing.T) {
	var v uint32 = 9
	assert.True(t, WaitForValueSpuriousOneshot(Spin{}, &v, 9, false))

	v = 0
	assert.False(t, WaitForValueSpuriousOneshot(Spin{}, &v, 9, false))
}
