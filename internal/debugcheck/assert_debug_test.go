//go:build wfemutex_debug

package debugcheck

import (
	"testing"

	"github.com/joeycumines/logiface"
)

// TestAssertCallsOsExitOnViolation exercises the wfemutex_debug path without
// actually terminating the test binary, by overriding logiface.OsExit for
// the duration of the test - the same interception point
// logiface-testsuite's AlertCallsOsExit config documents for testing a
// Fatal-mapped log level.
func TestAssertCallsOsExitOnViolation(t *testing.T) {
	prev := logiface.OsExit
	var exitCode int
	var called bool
	logiface.OsExit = func(code int) {
		called = true
		exitCode = code
	}
	defer func() { logiface.OsExit = prev }()

	Assert(`test`, false, `deliberately violated invariant`)

	if !called {
		t.Fatal("expected Assert to report the violation via logiface.OsExit")
	}
	if exitCode != 1 {
		t.Fatalf("expected exit code 1, got %d", exitCode)
	}
}

func TestEnabledIsTrueWithDebugTag(t *testing.T) {
	if !Enabled {
		t.Fatal("Enabled must be true under the wfemutex_debug build tag")
	}
}

func TestAssertDoesNotCallOsExitWhenOK(t *testing.T) {
	prev := logiface.OsExit
	var called bool
	logiface.OsExit = func(int) { called = true }
	defer func() { logiface.OsExit = prev }()

	Assert(`test`, true, `should never be reported`)

	if called {
		t.Fatal("Assert must not report a satisfied invariant")
	}
}
