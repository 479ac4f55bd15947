//go:build !amd64 && !arm64 && !arm

package cpufeature

// detect covers every architecture the original source didn't target: spin
// back-end only, capability bits all false.
func detect() Detected {
	return Detected{
		WaitKind:        KindSpin,
		WaitTimeoutKind: KindSpin,
		GranuleMin:      conservativeGranule,
		GranuleMax:      conservativeGranule,
	}
}
