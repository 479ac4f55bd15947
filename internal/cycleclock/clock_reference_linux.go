//go:build linux && amd64

package cycleclock

import (
	"time"

	"golang.org/x/sys/unix"
)

// referenceNow returns a monotonic nanosecond reading independent of
// ReadCycles, used only during calibration. CLOCK_MONOTONIC_RAW is immune to
// NTP frequency slewing, which the ordinary monotonic clock (and therefore
// time.Now) is not; calibration needs the hardware's undisciplined rate, not
// one the kernel is actively nudging to match NTP.
func referenceNow() int64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC_RAW, &ts); err != nil {
		return time.Now().UnixNano()
	}
	return ts.Nano()
}
