package wfemutex

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWaitForValuePublicAPI(t *testing.T) {
	var v uint32
	done := make(chan struct{})
	go func() {
		WaitForValue(&v, 5, false)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	select {
	case <-done:
		t.Fatal("WaitForValue returned before the value was set")
	default:
	}

	atomic.StoreUint32(&v, 5)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WaitForValue did not observe the write")
	}
}

func TestWaitForValueTimeoutPublicAPI(t *testing.T) {
	var v uint32
	assert.False(t, WaitForValueTimeout(&v, 1, uint64(20*time.Millisecond), false))

	v = 1
	assert.True(t, WaitForValueTimeout(&v, 1, uint64(time.Second), false))
}

func TestWaitForBitSetPublicAPI(t *testing.T) {
	var v uint32
	go func() { atomic.StoreUint32(&v, 1<<2) }()
	got := WaitForBitSet(&v, 2, false)
	assert.True(t, got&(1<<2) != 0)
}

func TestWaitForValueSpuriousOneshotPublicAPI(t *testing.T) {
	var v uint32 = 3
	assert.True(t, WaitForValueSpuriousOneshot(&v, 3, false))
}
