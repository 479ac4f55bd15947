// Package debugcheck provides the sanity assertions compiled in only under
// the wfemutex_debug build tag: double-unlock, unlock-not-held, and similar
// programming errors the release build can't afford to check on every
// Lock/Unlock. This mirrors the original source's own pattern of gating
// extra __atomic-based sanity checks behind a debug-only compile path,
// translated to Go's idiomatic equivalent, a build tag plus a stub
// implementation for the default build.
package debugcheck

// Enabled reports whether the wfemutex_debug build tag is active. Callers
// that need to read a lock word's prior value purely to feed Assert (e.g.
// a CAS a release build would otherwise replace with a plain store) should
// gate that read behind Enabled, so release builds pay for neither the
// extra atomic RMW nor the check itself.
const Enabled = enabled

// Assert reports a violated invariant in component, with detail describing
// what was observed. In a release build (no wfemutex_debug tag) this is a
// no-op compiled away entirely; see assert_debug.go for the enabled path.
func Assert(component string, ok bool, detail string) {
	assert(component, ok, detail)
}
