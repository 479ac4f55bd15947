//go:build arm64

package waitbackend

// yieldCPU executes the YIELD hint instruction.
func yieldCPU()
