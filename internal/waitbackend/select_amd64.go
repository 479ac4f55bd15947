//go:build amd64

package waitbackend

import "github.com/joeycumines/go-wfemutex/internal/cpufeature"

// Select returns the Monitor matching the detected host capabilities.
func Select(d cpufeature.Detected) Monitor {
	switch d.WaitKind {
	case cpufeature.KindMWAITX:
		return Mwaitx{}
	case cpufeature.KindWAITPKG:
		return Waitpkg{}
	default:
		return Spin{}
	}
}
