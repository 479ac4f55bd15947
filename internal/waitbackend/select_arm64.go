//go:build arm64

package waitbackend

import "github.com/joeycumines/go-wfemutex/internal/cpufeature"

// Select returns the Monitor matching the detected host capabilities.
func Select(d cpufeature.Detected) Monitor {
	switch d.WaitKind {
	case cpufeature.KindWFE, cpufeature.KindWFET:
		return Wfe{HasWFET: d.WaitTimeoutKind == cpufeature.KindWFET}
	default:
		return Spin{}
	}
}
