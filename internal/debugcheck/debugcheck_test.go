package debugcheck

import "testing"

// Without the wfemutex_debug build tag, Assert must never abort the test
// binary, violated invariant or not - that's the whole point of gating it
// behind the tag.
func TestAssertIsNoOpWithoutDebugTag(t *testing.T) {
	Assert(`test`, false, `this must not terminate the process`)
}

func TestEnabledIsFalseWithoutDebugTag(t *testing.T) {
	if Enabled {
		t.Fatal("Enabled must be false without the wfemutex_debug build tag")
	}
}
