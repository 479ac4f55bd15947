package wfemutex

import (
	"github.com/joeycumines/go-wfemutex/internal/atomicword"
	"github.com/joeycumines/go-wfemutex/internal/waitbackend"
)

// Word is the set of integer widths the wait operations support.
type Word = atomicword.Word

// WaitForValue blocks the calling goroutine until *addr equals expected.
// lowPower requests the back-end's deepest supported idle state, trading
// wake-up latency for power efficiency; it's ignored on back-ends (WFE/WFET)
// that have no power-state hint to give.
func WaitForValue[W Word](addr *W, expected W, lowPower bool) {
	waitbackend.WaitForValue(activeMonitor(), addr, expected, lowPower)
}

// WaitForBitSet blocks until bit index bit of *addr is 1, returning the word
// observed at that point.
func WaitForBitSet[W Word](addr *W, bit uint, lowPower bool) W {
	return waitbackend.WaitForBitSet(activeMonitor(), addr, bit, lowPower)
}

// WaitForBitClear blocks until bit index bit of *addr is 0, returning the
// word observed at that point.
func WaitForBitClear[W Word](addr *W, bit uint, lowPower bool) W {
	return waitbackend.WaitForBitClear(activeMonitor(), addr, bit, lowPower)
}

// WaitForValueTimeout blocks until *addr equals expected or ns nanoseconds
// elapse, reporting which happened. A ns of 0 still performs the initial
// fast-path check before comparing against the (already-elapsed) deadline.
func WaitForValueTimeout[W Word](addr *W, expected W, ns uint64, lowPower bool) bool {
	return waitbackend.WaitForValueTimeout(activeMonitor(), addr, expected, ns, lowPower)
}

// WaitForValueSpuriousOneshot arms the monitor, waits exactly once, and
// reports whether *addr equals expected afterward. It exists for tests and
// diagnostics measuring a back-end's spurious-wake rate; ordinary callers
// want WaitForValue or WaitForValueTimeout instead.
func WaitForValueSpuriousOneshot[W Word](addr *W, expected W, lowPower bool) bool {
	return waitbackend.WaitForValueSpuriousOneshot(activeMonitor(), addr, expected, lowPower)
}
