//go:build arm

package waitbackend

import "github.com/joeycumines/go-wfemutex/internal/cpufeature"

// Select returns the Monitor matching the detected host capabilities.
func Select(d cpufeature.Detected) Monitor {
	if d.WaitKind == cpufeature.KindWFE {
		return Wfe{}
	}
	return Spin{}
}
