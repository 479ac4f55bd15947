//go:build amd64

package waitbackend

import (
	"unsafe"

	"github.com/joeycumines/go-wfemutex/internal/atomicword"
	"github.com/joeycumines/go-wfemutex/internal/cpufeature"
	"github.com/joeycumines/go-wfemutex/internal/cycleclock"
)

func monitorxArm(addr unsafe.Pointer)
func mwaitxSleep(hints, extensions uint32, ebxCycles uint64)

// MWAITX C-state hint, EAX bits [7:4]: the field holds the target C-state
// minus one, so 0 requests C1, and the value 0xF requests C0. lowPower asks
// for C1 (hint 0); its absence asks for C0, the fastest wake-up.
const (
	mwaitxCstateC1 = 0
	mwaitxCstateC0 = 0xF << 4
)

const (
	mwaitxExtNone  = 0
	mwaitxExtTimer = 1 << 1
)

// Mwaitx is the AMD MONITORX/MWAITX back-end.
type Mwaitx struct{}

func (Mwaitx) Kind() cpufeature.Kind { return cpufeature.KindMWAITX }

func (Mwaitx) ArmAndLoad8(addr *uint8) uint8 {
	monitorxArm(unsafe.Pointer(addr))
	return atomicword.Load(addr)
}

func (Mwaitx) ArmAndLoad16(addr *uint16) uint16 {
	monitorxArm(unsafe.Pointer(addr))
	return atomicword.Load(addr)
}

func (Mwaitx) ArmAndLoad32(addr *uint32) uint32 {
	monitorxArm(unsafe.Pointer(addr))
	return atomicword.Load(addr)
}

func (Mwaitx) ArmAndLoad64(addr *uint64) uint64 {
	monitorxArm(unsafe.Pointer(addr))
	return atomicword.Load(addr)
}

func mwaitxHints(lowPower bool) uint32 {
	if lowPower {
		return mwaitxCstateC1
	}
	return mwaitxCstateC0
}

func (Mwaitx) Sleep(lowPower bool) {
	mwaitxSleep(mwaitxHints(lowPower), mwaitxExtNone, 0)
}

// SleepTimeout uses MWAITX's own hardware countdown (the timer extension
// gated by ECX bit 1), giving MWAITX a true hardware-enforced deadline the
// same way WFET does on ARM64.
func (Mwaitx) SleepTimeout(untilCycles uint64, lowPower bool) bool {
	now := cycleclock.ReadCycles()
	var remaining uint64
	if untilCycles > now {
		remaining = untilCycles - now
	}
	mwaitxSleep(mwaitxHints(lowPower), mwaitxExtTimer, remaining)
	return false
}
