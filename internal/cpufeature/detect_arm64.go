//go:build arm64

package cpufeature

// ctrEL0 reads CTR_EL0, whose ERG field (bits 20-23) gives the exclusive
// reservation granule as log2(words).
func ctrEL0() uint64

// idAA64ISAR2EL1 reads ID_AA64ISAR2_EL1; bits 0-3 (the WFXT field) report
// whether WFET/WFIT are implemented.
func idAA64ISAR2EL1() uint64

func detect() Detected {
	d := Detected{
		WaitKind:        KindWFE,
		WaitTimeoutKind: KindWFE,
		SupportsMonitor: true,
	}

	granule := granuleFromCTR(ctrEL0())
	d.GranuleMin, d.GranuleMax = granule, granule

	const wfxtFieldMask = 0xF
	if (idAA64ISAR2EL1()>>0)&wfxtFieldMask != 0 {
		d.WaitTimeoutKind = KindWFET
		d.SupportsTimedMonitor = true
	}

	// ARMv8 has no lower-power C-state toggle equivalent to MWAITX's hint.
	return d
}

func granuleFromCTR(ctr uint64) uint32 {
	const ergOffset = 20
	erg := uint32(ctr>>ergOffset) & 0xF
	if erg == 0 {
		return conservativeGranule
	}
	const bytesPerWord = 4
	return (1 << erg) * bytesPerWord
}
