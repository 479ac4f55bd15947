//go:build !amd64 && !arm64 && !arm

package waitbackend

import "runtime"

// yieldCPU has no hardware spin-wait hint to fall back on here, so it yields
// the goroutine's time slice instead; strictly worse than a true spin hint,
// but Spin itself is only ever the last-resort back-end on these targets.
func yieldCPU() {
	runtime.Gosched()
}
