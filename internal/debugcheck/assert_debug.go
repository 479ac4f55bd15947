//go:build wfemutex_debug

package debugcheck

import "github.com/joeycumines/go-wfemutex/internal/diag"

const enabled = true

func assert(component string, ok bool, detail string) {
	if !ok {
		diag.Misuse(component, detail)
	}
}
