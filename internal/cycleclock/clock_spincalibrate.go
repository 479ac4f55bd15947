//go:build amd64

package cycleclock

import "time"

// spinCalibrate is used only when CPUID leaf 0x15 doesn't report a usable
// ratio. It takes the minimum TSC delta over five one-millisecond samples
// against referenceNow, rounded to kHz, exactly as the calibration rule in
// the design requires: the minimum (rather than mean) rejects samples that
// were stretched by a scheduler preemption or an interrupt.
func spinCalibrate() uint64 {
	const samples = 5
	const window = int64(time.Millisecond)

	var best uint64
	for i := 0; i < samples; i++ {
		startRef := referenceNow()
		startCyc := rdtscSerialized()
		for referenceNow()-startRef < window {
		}
		delta := rdtscSerialized() - startCyc
		if i == 0 || delta < best {
			best = delta
		}
	}

	hz := best * 1000
	return (hz / 1000) * 1000
}
