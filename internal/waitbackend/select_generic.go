//go:build !amd64 && !arm64 && !arm

package waitbackend

import "github.com/joeycumines/go-wfemutex/internal/cpufeature"

// Select returns the Monitor matching the detected host capabilities.
func Select(cpufeature.Detected) Monitor {
	return Spin{}
}
