//go:build arm64

package waitbackend

import "github.com/joeycumines/go-wfemutex/internal/cpufeature"

func armAndLoad8(addr *uint8) uint8
func armAndLoad16(addr *uint16) uint16
func armAndLoad32(addr *uint32) uint32
func armAndLoad64(addr *uint64) uint64
func sleepWFE()
func sleepWFET(untilCycles uint64)

// Wfe is the ARM64 back-end. HasWFET reports whether the host's ID_AA64ISAR2
// WFXT field promised a real WFET instruction; when false, SleepTimeout
// falls back to a bare WFE and leaves deadline enforcement to the generic
// wait loop's own cycle comparison, which is correct, just coarser-grained.
type Wfe struct {
	HasWFET bool
}

func (w Wfe) Kind() cpufeature.Kind {
	if w.HasWFET {
		return cpufeature.KindWFET
	}
	return cpufeature.KindWFE
}

func (Wfe) ArmAndLoad8(addr *uint8) uint8    { return armAndLoad8(addr) }
func (Wfe) ArmAndLoad16(addr *uint16) uint16 { return armAndLoad16(addr) }
func (Wfe) ArmAndLoad32(addr *uint32) uint32 { return armAndLoad32(addr) }
func (Wfe) ArmAndLoad64(addr *uint64) uint64 { return armAndLoad64(addr) }

// Sleep issues a bare WFE. lowPower is accepted but ignored: WFE itself
// carries no power-state hint on ARM, unlike MWAITX/UMWAIT's explicit C-state
// selector.
func (Wfe) Sleep(bool) {
	sleepWFE()
}

func (w Wfe) SleepTimeout(untilCycles uint64, _ bool) bool {
	if w.HasWFET {
		sleepWFET(untilCycles)
	} else {
		sleepWFE()
	}
	// The instruction itself doesn't report which condition woke it; the
	// generic wait loop always re-checks the deadline afterward.
	return false
}
