package waitbackend

import (
	"github.com/joeycumines/go-wfemutex/internal/atomicword"
	"github.com/joeycumines/go-wfemutex/internal/cpufeature"
)

// Spin is the portable fallback Monitor: it has no hardware wait instruction
// to arm, so ArmAndLoad degrades to a plain acquire load and Sleep degrades
// to a bounded run of yieldCPU hints. It is always compiled, on every
// architecture, as the last resort when cpufeature.Detect finds nothing
// better.
type Spin struct{}

func (Spin) Kind() cpufeature.Kind { return cpufeature.KindSpin }

func (Spin) ArmAndLoad8(addr *uint8) uint8    { return atomicword.Load(addr) }
func (Spin) ArmAndLoad16(addr *uint16) uint16 { return atomicword.Load(addr) }
func (Spin) ArmAndLoad32(addr *uint32) uint32 { return atomicword.Load(addr) }
func (Spin) ArmAndLoad64(addr *uint64) uint64 { return atomicword.Load(addr) }

// spinRounds is the number of yieldCPU hints issued per Sleep call on the
// low-power path; it exists to give the scheduler a real chance to run
// another goroutine without turning every spin iteration into a full
// runtime.Gosched.
const spinRounds = 8

func (Spin) Sleep(lowPower bool) {
	if !lowPower {
		yieldCPU()
		return
	}
	for i := 0; i < spinRounds; i++ {
		yieldCPU()
	}
}

func (s Spin) SleepTimeout(untilCycles uint64, lowPower bool) bool {
	s.Sleep(lowPower)
	return false
}
