// Package waitbackend implements the wait contract shared by every back-end
// (Spin, Wfe, Wfet, Mwaitx, Waitpkg): the fast-path/arm/second-check/sleep/
// post-check state machine, collapsed into one generic implementation per
// operation rather than duplicated per integer width, per width the
// original C source's own duplication and Design Notes' suggested fix.
//
// Each back-end is a Monitor value, selected once at Init and never switched
// out for the rest of the process's life - the direct translation of "a sum
// type over back-ends selected once at init" from Design Notes, replacing
// the original's table of raw function pointers.
package waitbackend

import (
	"github.com/joeycumines/go-wfemutex/internal/atomicword"
	"github.com/joeycumines/go-wfemutex/internal/cpufeature"
	"github.com/joeycumines/go-wfemutex/internal/cycleclock"
)

// Monitor is the contract every back-end implements. ArmAndLoad primes the
// hardware monitor (a no-op beyond a plain load on back-ends with no
// hardware monitor) and returns the value observed by the load that primed
// it, so back-ends whose arming instruction is itself an acquire load (ARM's
// LDAXR) don't pay for a second trip to memory.
type Monitor interface {
	Kind() cpufeature.Kind

	ArmAndLoad8(addr *uint8) uint8
	ArmAndLoad16(addr *uint16) uint16
	ArmAndLoad32(addr *uint32) uint32
	ArmAndLoad64(addr *uint64) uint64

	// Sleep blocks until woken, spuriously or by a write in the granule.
	// lowPower requests the deepest idle state the back-end supports; ARM
	// back-ends accept but ignore it, per the design.
	Sleep(lowPower bool)

	// SleepTimeout blocks until woken or untilCycles (an absolute
	// cycleclock.ReadCycles reading) elapses. hitDeadline, when true, means
	// the back-end itself positively confirmed the deadline was reached;
	// false means "unknown", and the caller must fall back to comparing
	// cycleclock.ReadCycles against untilCycles. Every back-end in this
	// package returns false.
	SleepTimeout(untilCycles uint64, lowPower bool) (hitDeadline bool)
}

func armAndLoad[W atomicword.Word](m Monitor, addr *W) W {
	switch a := any(addr).(type) {
	case *uint8:
		return W(m.ArmAndLoad8(a))
	case *uint16:
		return W(m.ArmAndLoad16(a))
	case *uint32:
		return W(m.ArmAndLoad32(a))
	case *uint64:
		return W(m.ArmAndLoad64(a))
	default:
		panic("waitbackend: unsupported width")
	}
}

// WaitForValue returns only once *addr is observed equal to expected, with
// acquire ordering (see atomicword's package doc for why Go's sync/atomic
// already provides that). State machine, per the design:
//
//	Entry -> FastCheck -> {Return-Success | ArmMonitor -> SecondCheck ->
//	  {Return-Success | Sleep -> PostCheck -> {Return-Success | ArmMonitor}}}
func WaitForValue[W atomicword.Word](m Monitor, addr *W, expected W, lowPower bool) {
	if atomicword.Load(addr) == expected {
		return
	}
	for {
		if armAndLoad(m, addr) == expected {
			return
		}
		m.Sleep(lowPower)
		if atomicword.Load(addr) == expected {
			return
		}
		// Spurious wake: loop back to ArmMonitor.
	}
}

// WaitForBitSet returns the first observed word in which bit is 1.
func WaitForBitSet[W atomicword.Word](m Monitor, addr *W, bit uint, lowPower bool) W {
	if v := atomicword.Load(addr); atomicword.Bit(v, bit) {
		return v
	}
	for {
		if v := armAndLoad(m, addr); atomicword.Bit(v, bit) {
			return v
		}
		m.Sleep(lowPower)
		if v := atomicword.Load(addr); atomicword.Bit(v, bit) {
			return v
		}
	}
}

// WaitForBitClear is WaitForBitSet's symmetric counterpart.
func WaitForBitClear[W atomicword.Word](m Monitor, addr *W, bit uint, lowPower bool) W {
	if v := atomicword.Load(addr); !atomicword.Bit(v, bit) {
		return v
	}
	for {
		if v := armAndLoad(m, addr); !atomicword.Bit(v, bit) {
			return v
		}
		m.Sleep(lowPower)
		if v := atomicword.Load(addr); !atomicword.Bit(v, bit) {
			return v
		}
	}
}

// WaitForValueTimeout returns true if the condition was observed within ns
// nanoseconds of entry, false on timeout. The deadline is an absolute cycle
// count computed once, on first entry to the ArmMonitor state, exactly as
// specified; it is never recomputed from a fresh ns budget on a spurious
// wake.
func WaitForValueTimeout[W atomicword.Word](m Monitor, addr *W, expected W, ns uint64, lowPower bool) bool {
	if atomicword.Load(addr) == expected {
		return true
	}
	deadline := cycleclock.ReadCycles() + cycleclock.NSToCycles(ns)
	for {
		if armAndLoad(m, addr) == expected {
			return true
		}
		if cycleclock.ReadCycles() >= deadline {
			return false
		}
		hitDeadline := m.SleepTimeout(deadline, lowPower)
		if atomicword.Load(addr) == expected {
			return true
		}
		if hitDeadline || cycleclock.ReadCycles() >= deadline {
			return false
		}
		// Spurious wake with time remaining: loop back to ArmMonitor.
	}
}

// WaitForValueSpuriousOneshot arms the monitor, issues exactly one wait, and
// reports whether the condition holds afterward. It exists only to let tests
// and diagnostics measure the spurious-wake rate of a given back-end/host;
// ordinary callers should use WaitForValue or WaitForValueTimeout.
func WaitForValueSpuriousOneshot[W atomicword.Word](m Monitor, addr *W, expected W, lowPower bool) bool {
	armAndLoad(m, addr)
	m.Sleep(lowPower)
	return atomicword.Load(addr) == expected
}
