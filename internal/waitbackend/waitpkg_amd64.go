//go:build amd64

package waitbackend

import (
	"unsafe"

	"github.com/joeycumines/go-wfemutex/internal/atomicword"
	"github.com/joeycumines/go-wfemutex/internal/cpufeature"
)

func umonitorArm(addr unsafe.Pointer)
func umwaitSleep(hint uint32, deadline uint64)

// UMWAIT power-state hint: bit 0, 0 = C0.2 (larger power savings, slower
// wakeup), 1 = C0.1 (faster wakeup, smaller power savings).
const (
	waitpkgPowerSaving uint32 = 0
	waitpkgFastWake    uint32 = 1
)

// waitpkgMaxDeadline is the untimed-wait deadline: both halves all-ones, the
// same sentinel the original source uses, clamped in practice by
// IA32_UMWAIT_CONTROL.
const waitpkgMaxDeadline uint64 = ^uint64(0)

// Waitpkg is the Intel UMONITOR/UMWAIT (WAITPKG) back-end.
type Waitpkg struct{}

func (Waitpkg) Kind() cpufeature.Kind { return cpufeature.KindWAITPKG }

func (Waitpkg) ArmAndLoad8(addr *uint8) uint8 {
	umonitorArm(unsafe.Pointer(addr))
	return atomicword.Load(addr)
}

func (Waitpkg) ArmAndLoad16(addr *uint16) uint16 {
	umonitorArm(unsafe.Pointer(addr))
	return atomicword.Load(addr)
}

func (Waitpkg) ArmAndLoad32(addr *uint32) uint32 {
	umonitorArm(unsafe.Pointer(addr))
	return atomicword.Load(addr)
}

func (Waitpkg) ArmAndLoad64(addr *uint64) uint64 {
	umonitorArm(unsafe.Pointer(addr))
	return atomicword.Load(addr)
}

func waitpkgHint(lowPower bool) uint32 {
	if lowPower {
		return waitpkgPowerSaving
	}
	return waitpkgFastWake
}

func (Waitpkg) Sleep(lowPower bool) {
	umwaitSleep(waitpkgHint(lowPower), waitpkgMaxDeadline)
}

// SleepTimeout passes untilCycles straight through as UMWAIT's absolute TSC
// deadline; unlike MWAITX, UMWAIT's timeout is an absolute timestamp, not a
// relative cycle count, so there is no remaining-cycles subtraction here.
func (Waitpkg) SleepTimeout(untilCycles uint64, lowPower bool) bool {
	umwaitSleep(waitpkgHint(lowPower), untilCycles)
	return false
}
