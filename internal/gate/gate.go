// internal/gate/gate.go
//
// The platform gate is the install-time check packaged into the macOS
// installer variants. One installer is built per architecture; the gate
// refuses to let a package built for the other architecture finish
// installing. Rosetta complicates this: an arm64 host running the installer
// under translation reports itself as x86_64, so the reported value has to
// be corrected before comparing.
//
// One parameterized check covers both installer variants; the expected
// architecture is configuration, not code.

package gate

import (
	"fmt"
	"strings"
)

// Arch is a CPU architecture as reported by `uname -m`.
type Arch string

const (
	X8664 Arch = "x86_64"
	ARM64 Arch = "arm64"
)

func (a Arch) String() string {
	return string(a)
}

// ParseArch normalizes an architecture string. "amd64" and "aarch64" are
// accepted because runner images and uname disagree on spelling.
func ParseArch(s string) (Arch, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x86_64", "amd64":
		return X8664, nil
	case "arm64", "aarch64":
		return ARM64, nil
	default:
		return "", fmt.Errorf("unknown architecture %q", s)
	}
}

// other returns the architecture a translation layer would be masking.
func other(a Arch) Arch {
	if a == X8664 {
		return ARM64
	}
	return X8664
}

// Result is the outcome of one gate invocation.
type Result struct {
	Reported   Arch
	Effective  Arch
	Translated bool
	OK         bool
}

// Gate checks the machine architecture against the single architecture this
// installer variant was built for.
type Gate struct {
	Expected Arch
	Log      Sink
}

// Check computes the effective architecture and compares it to Expected.
// The diagnostic line is appended to the sink on every invocation, success
// or failure. A sink failure is returned alongside a valid Result so the
// caller can still act on the decision.
func (g Gate) Check(reported Arch, translated bool) (Result, error) {
	effective := reported
	if translated {
		// Translation transparently runs the installer as the other
		// architecture; the report is about the guest, not the host.
		effective = other(reported)
	}

	res := Result{
		Reported:   reported,
		Effective:  effective,
		Translated: translated,
		OK:         effective == g.Expected,
	}

	var logErr error
	if g.Log != nil {
		line := fmt.Sprintf("detected_arch=%s translated=%t", reported, translated)
		logErr = g.Log.Append(line)
	}

	return res, logErr
}

// Message returns the user-facing text for a gate result, suitable for the
// installer's modal dialog on abort.
func (g Gate) Message(res Result) string {
	if res.OK {
		return fmt.Sprintf("architecture check passed (%s)", res.Effective)
	}
	return fmt.Sprintf(
		"This installer is built for %s machines, but this machine is %s. Please download the %s installer.",
		g.Expected, res.Effective, res.Effective,
	)
}
