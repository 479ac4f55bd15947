// Package cpufeature performs the one-shot, process-wide detection of which
// wait mechanism the host supports: plain spin, ARM WFE, ARM WFET, Intel
// UMWAIT/WAITPKG, or AMD MWAITX, plus the hardware monitor granule size.
//
// wfemutex.Init calls Detect once, via sync.Once, and treats the result as
// immutable thereafter.
package cpufeature

// Kind identifies which wait back-end is active for blocking or timed waits;
// a host can (and on ARM, typically does) use a different Kind for each.
type Kind uint8

const (
	KindSpin Kind = iota
	KindWFE
	KindWFET
	KindMWAITX
	KindWAITPKG
)

func (k Kind) String() string {
	switch k {
	case KindSpin:
		return "spin"
	case KindWFE:
		return "wfe"
	case KindWFET:
		return "wfet"
	case KindMWAITX:
		return "mwaitx"
	case KindWAITPKG:
		return "waitpkg"
	default:
		return "unknown"
	}
}

// conservativeGranule is substituted whenever the architecture reports a
// granule size of zero, meaning "unknown, assume worst case".
const conservativeGranule = 2048

// Detected is the result of one-shot feature detection.
type Detected struct {
	WaitKind        Kind
	WaitTimeoutKind Kind

	GranuleMin uint32
	GranuleMax uint32

	SupportsMonitor        bool
	SupportsTimedMonitor   bool
	SupportsLowPowerCstate bool
}

// Detect probes the host once. Callers should memoise the result (see
// wfemutex.Init); it is not itself memoised here, so tests can call it
// directly without fighting a process-wide singleton.
func Detect() Detected {
	return detect()
}
