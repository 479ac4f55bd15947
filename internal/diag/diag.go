// Package diag is the module's only point of contact with a logging
// library: a one-line summary of the detected back-end at Init, and the
// fatal misuse report the wfemutex_debug build emits before exiting. It is
// never on any wait/lock hot path.
package diag

import (
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// logger writes to stderr via stumpy's default configuration, the same
// factory pattern every back-end package in this module's lineage uses.
var logger = stumpy.L.New(stumpy.L.WithStumpy())

// InitSummary records which wait back-end and monitor granule Init chose, at
// informational level. Called once, from wfemutex.Init.
func InitSummary(backend string, granuleMin, granuleMax uint32, lowPowerCstate bool) {
	logger.Info().
		Str(`backend`, backend).
		Int64(`granule_min`, int64(granuleMin)).
		Int64(`granule_max`, int64(granuleMax)).
		Bool(`low_power_cstate`, lowPowerCstate).
		Log(`wfemutex: wait back-end selected`)
}

// Misuse reports a debug-build-only programming-error invariant violation
// (double unlock, unlock-not-held, etc.) and, via [logiface.Logger.Fatal],
// terminates the process - the same contract the original source's
// debug-assertion aborts have, translated to [logiface.OsExit] so tests can
// intercept it instead of forking a real process to observe the exit.
func Misuse(component, detail string) {
	logger.Fatal().
		Str(`component`, component).
		Str(`detail`, detail).
		Log(`wfemutex: debug assertion failed`)
}
