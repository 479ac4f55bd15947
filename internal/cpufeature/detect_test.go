package cpufeature

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectReturnsConsistentKinds(t *testing.T) {
	d := Detect()

	switch d.WaitKind {
	case KindSpin, KindWFE, KindWFET, KindMWAITX, KindWAITPKG:
	default:
		t.Fatalf("unexpected WaitKind %v", d.WaitKind)
	}

	switch d.WaitTimeoutKind {
	case KindSpin, KindWFE, KindWFET, KindMWAITX, KindWAITPKG:
	default:
		t.Fatalf("unexpected WaitTimeoutKind %v", d.WaitTimeoutKind)
	}

	assert.Greater(t, d.GranuleMin, uint32(0))
	assert.GreaterOrEqual(t, d.GranuleMax, d.GranuleMin)

	if d.WaitKind == KindSpin {
		assert.False(t, d.SupportsMonitor)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "spin", KindSpin.String())
	assert.Equal(t, "wfe", KindWFE.String())
	assert.Equal(t, "wfet", KindWFET.String())
	assert.Equal(t, "mwaitx", KindMWAITX.String())
	assert.Equal(t, "waitpkg", KindWAITPKG.String())
	assert.Equal(t, "unknown", Kind(255).String())
}
