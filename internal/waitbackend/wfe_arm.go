//go:build arm

package waitbackend

import (
	"github.com/joeycumines/go-wfemutex/internal/atomicword"
	"github.com/joeycumines/go-wfemutex/internal/cpufeature"
)

func armAndLoad8(addr *uint8) uint8
func armAndLoad16(addr *uint16) uint16
func armAndLoad32(addr *uint32) uint32
func sleepWFE32()

// Wfe is the 32-bit ARM back-end. There is no WFET equivalent pre-ARMv8.2,
// so SleepTimeout always falls back to a bare WFE, same as the arm64 Wfe
// without ID_AA64ISAR2 WFXT support. There's also no hardware monitor for 64-bit
// words on this target, matching the original source, which never compiles
// an i64 WFE path outside _M_ARM_64; ArmAndLoad64 degrades to a plain
// acquire load so the Monitor interface stays total, but no caller should
// reach it in practice.
type Wfe struct{}

func (Wfe) Kind() cpufeature.Kind { return cpufeature.KindWFE }

func (Wfe) ArmAndLoad8(addr *uint8) uint8    { return armAndLoad8(addr) }
func (Wfe) ArmAndLoad16(addr *uint16) uint16 { return armAndLoad16(addr) }
func (Wfe) ArmAndLoad32(addr *uint32) uint32 { return armAndLoad32(addr) }
func (Wfe) ArmAndLoad64(addr *uint64) uint64 { return atomicword.Load(addr) }

func (Wfe) Sleep(bool) {
	sleepWFE32()
}

func (w Wfe) SleepTimeout(untilCycles uint64, lowPower bool) bool {
	w.Sleep(lowPower)
	return false
}
