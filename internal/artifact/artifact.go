// internal/artifact/artifact.go
//
// Naming convention for published installer artifacts. Downstream consumers
// (update checkers, download pages) expect these exact names, so the table
// here is the single place they are spelled out.

package artifact

import (
	"fmt"
	"strings"
)

// Target is one (platform, architecture) build target.
type Target string

const (
	Windows    Target = "windows"
	MacOSIntel Target = "macos-intel"
	MacOSARM   Target = "macos-arm"
)

func (t Target) String() string {
	return string(t)
}

// ParseTarget converts a CLI/env string into a Target.
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "windows":
		return Windows, nil
	case "macos-intel", "macos-x86_64":
		return MacOSIntel, nil
	case "macos-arm", "macos-arm64":
		return MacOSARM, nil
	default:
		return "", fmt.Errorf("unknown build target %q (expected windows, macos-intel or macos-arm)", s)
	}
}

// All returns every target a release must carry, in publish order.
func All() []Target {
	return []Target{Windows, MacOSIntel, MacOSARM}
}

// Variant is the Windows accelerator axis. Both variants come out of the
// single Windows build job.
type Variant string

const (
	VariantNVIDIA Variant = "nvidia"
	VariantCPU    Variant = "cpu"
)

// InstallerName is the internal name the packager emits before the rename
// to the canonical public-facing name.
func (t Target) InstallerName() string {
	if t == Windows {
		return "FreeScribeInstaller.exe"
	}
	return "FreeScribeInstaller.pkg"
}

// CanonicalName is the public-facing asset name attached to the release.
// These names are load-bearing; do not restyle them.
func (t Target) CanonicalName() string {
	switch t {
	case Windows:
		return "FreeScribeInstaller_windows.exe"
	case MacOSIntel:
		return "FreeScribeInstaller_x86_64.pkg"
	case MacOSARM:
		return "FreeScribeInstaller_arm64.pkg"
	default:
		return ""
	}
}

// PayloadNames are the per-variant client payloads bundled into the
// installer. Only Windows has an accelerator axis.
func (t Target) PayloadNames() []string {
	if t == Windows {
		return []string{"freescribe-client-nvidia", "freescribe-client-cpu"}
	}
	return []string{"freescribe-client"}
}

// Artifact is one named installer binary bound to a single target. Name is
// the identity: it must be unique within a release, which the canonical
// naming table guarantees by construction.
type Artifact struct {
	Target Target
	Name   string
	Path   string
}
