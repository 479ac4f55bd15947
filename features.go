package wfemutex

import (
	"sync"

	"github.com/joeycumines/go-wfemutex/internal/cpufeature"
	"github.com/joeycumines/go-wfemutex/internal/cycleclock"
	"github.com/joeycumines/go-wfemutex/internal/diag"
	"github.com/joeycumines/go-wfemutex/internal/waitbackend"
)

// Features reports the host capabilities Init detected.
type Features struct {
	// Backend names the wait mechanism chosen for blocking waits: "spin",
	// "wfe", "wfet", "mwaitx", or "waitpkg".
	Backend string
	// TimeoutBackend is the mechanism chosen for timed waits; it differs
	// from Backend on ARM64 hosts that advertise WFET, where blocking waits
	// use WFE and timed waits use WFET.
	TimeoutBackend string
	// CycleHz is the calibrated frequency of the cycle counter ReadCycles
	// reads, used to turn a nanosecond timeout into a cycle count.
	CycleHz uint64
	// GranuleMin and GranuleMax bound the number of bytes a single armed
	// monitor actually watches; a write anywhere in that span, not just at
	// the exact address waited on, can produce a wake-up.
	GranuleMin, GranuleMax uint32
	// SupportsMonitor reports whether the host has a hardware monitor/wait
	// mechanism at all; false means every wait degrades to Spin.
	SupportsMonitor bool
	// SupportsTimedMonitor reports whether TimeoutBackend enforces the
	// deadline in hardware (WFET, MWAITX's timer, UMWAIT's deadline). When
	// false, timed waits sleep without a hardware timeout (plain WFE, or
	// Spin) and the deadline is enforced only by re-reading the cycle
	// counter after each wake.
	SupportsTimedMonitor bool
	// SupportsLowPowerCstate reports whether passing lowPower=true to a
	// wait operation requests a deeper idle state than the default.
	SupportsLowPowerCstate bool
}

var (
	initOnce sync.Once
	monitor  waitbackend.Monitor
	features Features
)

// Init performs one-shot host feature detection and selects the wait
// back-end for the rest of the process's life. It is safe to call from
// multiple goroutines and safe to call more than once; only the first call
// does any work, exactly like sync.Once guarantees. Callers aren't required
// to call Init explicitly - every exported operation calls it lazily - but
// calling it once up front (e.g. from main) avoids paying detection cost on
// the first real wait.
func Init() {
	initOnce.Do(func() {
		d := cpufeature.Detect()
		monitor = waitbackend.Select(d)
		features = Features{
			Backend:                d.WaitKind.String(),
			TimeoutBackend:         d.WaitTimeoutKind.String(),
			CycleHz:                cycleclock.Calibrate().CycleHz,
			GranuleMin:             d.GranuleMin,
			GranuleMax:             d.GranuleMax,
			SupportsMonitor:        d.SupportsMonitor,
			SupportsTimedMonitor:   d.SupportsTimedMonitor,
			SupportsLowPowerCstate: d.SupportsLowPowerCstate,
		}
		diag.InitSummary(features.Backend, features.GranuleMin, features.GranuleMax, features.SupportsLowPowerCstate)
	})
}

// GetFeatures returns the detected host capabilities, calling Init first if
// it hasn't run yet.
func GetFeatures() Features {
	Init()
	return features
}

// activeMonitor returns the process-wide Monitor, initializing it first if
// necessary. Once published by initOnce.Do, it's read-only for the rest of
// the process, so no further synchronization is needed on the read side.
func activeMonitor() waitbackend.Monitor {
	Init()
	return monitor
}
