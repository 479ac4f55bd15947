//go:build arm

package waitbackend

// yieldCPU executes the YIELD hint instruction.
func yieldCPU()
