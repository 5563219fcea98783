package gate

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArch(t *testing.T) {
	tests := []struct {
		input     string
		want      Arch
		expectErr bool
	}{
		{"x86_64", X8664, false},
		{"amd64", X8664, false},
		{"arm64", ARM64, false},
		{"aarch64", ARM64, false},
		{"ARM64", ARM64, false},
		{"  x86_64 ", X8664, false},
		{"i386", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseArch(tt.input)
		if tt.expectErr {
			assert.Error(t, err, "input %q", tt.input)
		} else {
			require.NoError(t, err, "input %q", tt.input)
			assert.Equal(t, tt.want, got, "input %q", tt.input)
		}
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name       string
		expected   Arch
		reported   Arch
		translated bool
		wantOK     bool
	}{
		{
			name:       "intel reported, native, arm expected",
			expected:   ARM64,
			reported:   X8664,
			translated: false,
			wantOK:     false,
		},
		{
			name:       "intel reported under rosetta, arm expected",
			expected:   ARM64,
			reported:   X8664,
			translated: true,
			wantOK:     true,
		},
		{
			name:       "arm reported, native, arm expected",
			expected:   ARM64,
			reported:   ARM64,
			translated: false,
			wantOK:     true,
		},
		{
			name:       "intel reported, native, intel expected",
			expected:   X8664,
			reported:   X8664,
			translated: false,
			wantOK:     true,
		},
		{
			name:       "intel reported under rosetta, intel expected",
			expected:   X8664,
			reported:   X8664,
			translated: true,
			wantOK:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &MemorySink{}
			g := Gate{Expected: tt.expected, Log: sink}

			res, err := g.Check(tt.reported, tt.translated)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, res.OK)
			assert.Equal(t, tt.reported, res.Reported)

			// one diagnostic line per invocation, pass or fail
			require.Len(t, sink.Lines(), 1)
			assert.Contains(t, sink.Lines()[0], "detected_arch="+tt.reported.String())
		})
	}
}

func TestCheckLogsOnEveryInvocation(t *testing.T) {
	sink := &MemorySink{}
	g := Gate{Expected: ARM64, Log: sink}

	_, err := g.Check(ARM64, false)
	require.NoError(t, err)
	_, err = g.Check(X8664, false)
	require.NoError(t, err)

	lines := sink.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "detected_arch=arm64 translated=false", lines[0])
	assert.Equal(t, "detected_arch=x86_64 translated=false", lines[1])
}

func TestCheckNilSink(t *testing.T) {
	g := Gate{Expected: ARM64}
	res, err := g.Check(ARM64, false)
	require.NoError(t, err)
	assert.True(t, res.OK)
}

func TestFileSinkAppendOnly(t *testing.T) {
	path := t.TempDir() + "/install.log"
	sink := NewFileSink(path)

	require.NoError(t, sink.Append("first"))
	require.NoError(t, sink.Append("second"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestMessage(t *testing.T) {
	g := Gate{Expected: ARM64}

	res, err := g.Check(X8664, false)
	require.NoError(t, err)
	assert.Contains(t, g.Message(res), "built for arm64")
	assert.Contains(t, g.Message(res), "this machine is x86_64")

	res, err = g.Check(ARM64, false)
	require.NoError(t, err)
	assert.Contains(t, g.Message(res), "passed")
}
