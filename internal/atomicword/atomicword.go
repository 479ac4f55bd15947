// Package atomicword collapses the wait-primitive layer's per-width bodies
// (the original C source repeats near-identical functions for uint8_t,
// uint16_t, uint32_t and uint64_t) into one generic implementation per
// operation, monomorphised over Word at each call site rather than dispatched
// through an indirect call.
//
// Go's sync/atomic has no generic entry point over an arbitrary-width
// caller-supplied address, so each function here does a cold type switch to
// pick the matching sync/atomic call. Per the Go memory model, sync/atomic
// operations are sequentially consistent, which is strictly stronger than the
// acquire/release ordering the wait contract requires, so no additional
// fencing is needed around Load/Store/CompareAndSwap below.
package atomicword

import (
	"sync/atomic"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Word is the set of integer widths the wait primitives operate on, matching
// the original source's uint8_t/uint16_t/uint32_t/uint64_t instantiations.
// It's the intersection of constraints.Unsigned (ruling out signed widths,
// which the original source never instantiates) with the exact four widths
// sync/atomic exposes entry points for; unlike constraints.Unsigned alone,
// it excludes uint/uintptr, which the type switches below don't handle.
type Word interface {
	constraints.Unsigned
	uint8 | uint16 | uint32 | uint64
}

// Load performs an acquire-ordered (sequentially consistent) load of *addr.
func Load[W Word](addr *W) W {
	switch a := any(addr).(type) {
	case *uint8:
		return W(atomic.LoadUint8(a))
	case *uint16:
		return W(atomic.LoadUint16(a))
	case *uint32:
		return W(atomic.LoadUint32(a))
	case *uint64:
		return W(atomic.LoadUint64(a))
	default:
		panic("atomicword: unsupported width")
	}
}

// Store performs a release-ordered (sequentially consistent) store to *addr.
func Store[W Word](addr *W, val W) {
	switch a := any(addr).(type) {
	case *uint8:
		atomic.StoreUint8(a, uint8(val))
	case *uint16:
		atomic.StoreUint16(a, uint16(val))
	case *uint32:
		atomic.StoreUint32(a, uint32(val))
	case *uint64:
		atomic.StoreUint64(a, uint64(val))
	default:
		panic("atomicword: unsupported width")
	}
}

// CompareAndSwap attempts *addr: old -> new, returning whether it succeeded.
// Like sync/atomic, it may spuriously fail on some platforms; callers must
// not rely on "CAS failed" implying *addr != old.
func CompareAndSwap[W Word](addr *W, old, new W) bool {
	switch a := any(addr).(type) {
	case *uint8:
		return atomic.CompareAndSwapUint8(a, uint8(old), uint8(new))
	case *uint16:
		return atomic.CompareAndSwapUint16(a, uint16(old), uint16(new))
	case *uint32:
		return atomic.CompareAndSwapUint32(a, uint32(old), uint32(new))
	case *uint64:
		return atomic.CompareAndSwapUint64(a, uint64(old), uint64(new))
	default:
		panic("atomicword: unsupported width")
	}
}

// Add atomically adds delta to *addr (unsigned wraparound) and returns the
// new value, e.g. Add(addr, ^W(0)) is a fetch-subtract-one.
func Add[W Word](addr *W, delta W) W {
	switch a := any(addr).(type) {
	case *uint8:
		return W(atomic.AddUint8(a, uint8(delta)))
	case *uint16:
		return W(atomic.AddUint16(a, uint16(delta)))
	case *uint32:
		return W(atomic.AddUint32(a, uint32(delta)))
	case *uint64:
		return W(atomic.AddUint64(a, uint64(delta)))
	default:
		panic("atomicword: unsupported width")
	}
}

// Sub is Add with an unsigned-wraparound negated delta, i.e. *addr -= delta.
func Sub[W Word](addr *W, delta W) W {
	return Add(addr, 0-delta)
}

// Bit returns whether bit index bit is set in val. A bit index at or beyond
// the word's width is a programming error; like the original source, this
// does not corrupt memory but its result is otherwise unspecified.
func Bit[W Word](val W, bit uint) bool {
	return (val>>bit)&1 != 0
}

// Pointer returns addr as an unsafe.Pointer, for back-ends that need the raw
// address to arm a hardware monitor.
func Pointer[W Word](addr *W) unsafe.Pointer {
	return unsafe.Pointer(addr)
}

// Width returns the width of W, in bytes.
func Width[W Word]() int {
	var zero W
	switch any(zero).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	case uint32:
		return 4
	case uint64:
		return 8
	default:
		panic("atomicword: unsupported width")
	}
}
