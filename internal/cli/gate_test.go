package cli

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scribeci/internal/gate"
)

func TestGateInputsReportedOverride(t *testing.T) {
	reported, translated, err := gateInputs("x86_64", true, true)
	require.NoError(t, err)
	assert.Equal(t, gate.X8664, reported)
	assert.True(t, translated)
}

func TestGateInputsRejectsBadReported(t *testing.T) {
	_, _, err := gateInputs("i386", false, false)
	require.Error(t, err)
}

func TestGateInputsTranslatedOverrideWithoutReported(t *testing.T) {
	// the detected translation signal on a non-darwin test host is always
	// false, so an honored override must come back true
	reported, translated, err := gateInputs("", true, true)
	require.NoError(t, err)
	assert.NotEmpty(t, reported)
	assert.True(t, translated, "an explicit --translated must not be discarded by detection")
}

func TestGateInputsDetectionDefault(t *testing.T) {
	if runtime.GOOS == "darwin" {
		t.Skip("detected translation state varies by darwin host")
	}
	// flag left at its default: detection's answer stands
	_, translated, err := gateInputs("", true, false)
	require.NoError(t, err)
	assert.False(t, translated)
}
