//go:build amd64

package waitbackend

// yieldCPU executes PAUSE, the documented spin-wait hint on x86.
func yieldCPU()
