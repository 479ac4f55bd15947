//go:build arm

package cpufeature

// detect mirrors the 32-bit ARM branch of the original source: the monitor
// is always assumed available (WFE), there is no WFET equivalent pre-ARMv8,
// and the granule is hard-coded to 64 bytes because CTR isn't reliably
// readable from user space on this target. That hard-coded value is a
// pragmatic choice, not a correctness claim, exactly as the original source
// documents it.
func detect() Detected {
	return Detected{
		WaitKind:        KindWFE,
		WaitTimeoutKind: KindWFE,
		GranuleMin:      64,
		GranuleMax:      64,
		SupportsMonitor: true,
	}
}
