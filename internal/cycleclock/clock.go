// Package cycleclock supplies a monotonic hardware cycle reading and the
// nanosecond<->cycle conversion used to turn a caller's timeout into a number
// of cycles (or, on WFET/UMWAIT, an absolute deadline) the wait back-ends can
// compare against.
//
// ReadCycles must be monotonic per-core; it deliberately does not attempt to
// be monotonic *across* cores (TSC/CNTVCT drift between cores is a real
// phenomenon on some hardware), matching the original source's scope.
package cycleclock

import (
	"math/bits"
	"sync"
)

const nanosecondsInSecond = 1_000_000_000

// Calibration holds the derived frequency and the ns->cycle ratio.
type Calibration struct {
	CycleHz    uint64
	Multiplier uint64
	Divisor    uint64
}

var (
	mu          sync.Mutex
	calibration Calibration
	calibrated  bool
	overrideHz  uint64
)

// OverrideFrequency forces the calibrated cycle frequency, bypassing
// hardware/spin-based detection. It exists for environments (emulators,
// oversubscribed CI containers) where calibration is unreliable; it must be
// called, if at all, before Calibrate (i.e. before wfemutex.Init).
func OverrideFrequency(hz uint64) {
	mu.Lock()
	defer mu.Unlock()
	overrideHz = hz
	calibrated = false
}

// Calibrate derives CycleHz (from the platform's frequencyHz hook, unless
// overridden) and the Multiplier/Divisor pair, memoising the result. It is
// idempotent and safe to call from multiple goroutines; the first caller
// does the work.
func Calibrate() Calibration {
	mu.Lock()
	defer mu.Unlock()
	if calibrated {
		return calibration
	}

	hz := overrideHz
	if hz == 0 {
		hz = frequencyHz()
	}

	var mul, div uint64
	if hz > nanosecondsInSecond {
		// Cycle counter frequency is greater than 1GHz. The cycles-per-ns
		// ratio is expressed as 10,000 / (1e13 / hz), scaled by 10,000 so a
		// sub-microsecond timeout doesn't truncate to zero cycles; a
		// 10,000-cycle quantisation error is tolerated at this frequency
		// range.
		mul = 10000
		div = (nanosecondsInSecond * 10000) / hz
	} else if hz != 0 {
		// Cycle counter frequency is at or below 1GHz: exact ratio, hz
		// cycles per 1e9 ns, with no rounding of the ns-per-cycle period.
		// Snapdragon parts have historically used a 19.2MHz counter (~52.08
		// ns/cycle); Apple M1 uses 24MHz (~41.67 ns/cycle); NVIDIA Tegra up
		// to 31.25MHz gives a clean 32 ns/cycle.
		mul = hz
		div = nanosecondsInSecond
	} else {
		// Unsupported platform: ReadCycles returns nanoseconds directly, so
		// the conversion is the identity.
		mul, div = 1, 1
	}

	calibration = Calibration{CycleHz: hz, Multiplier: mul, Divisor: div}
	calibrated = true
	return calibration
}

// NSToCycles converts a nanosecond duration to a cycle count using the
// calibrated Multiplier/Divisor, via a 128-bit intermediate (math/bits.Mul64
// and Div64) so it never overflows or truncates to zero for timeouts up to
// 10^18 ns.
func NSToCycles(ns uint64) uint64 {
	c := Calibrate()
	hi, lo := bits.Mul64(ns, c.Multiplier)
	if hi == 0 {
		// Fast path: no overflow in the multiply, a plain divide suffices.
		return lo / c.Divisor
	}
	q, _ := bits.Div64(hi, lo, c.Divisor)
	return q
}

// ReadCycles returns the current cycle counter reading, using the fastest
// unprivileged instruction the platform provides, or a monotonic nanosecond
// clock (in which case NSToCycles degenerates to the identity) when no
// hardware counter is available.
func ReadCycles() uint64 {
	return readCycles()
}
