package gate

import (
	"runtime"
	"strings"

	"scribeci/internal/executil"
)

// Detect reads the machine architecture and translation state. On macOS the
// canonical sources are `uname -m` and the sysctl Rosetta flag; anywhere
// else we fall back to the compiled-in GOARCH and assume no translation.
func Detect() (Arch, bool, error) {
	if runtime.GOOS != "darwin" {
		return ParseArchFallback(runtime.GOARCH)
	}

	out, err := executil.CaptureCMD("uname", "-m")
	if err != nil {
		return ParseArchFallback(runtime.GOARCH)
	}
	arch, err := ParseArch(out)
	if err != nil {
		return "", false, err
	}

	// sysctl.proc_translated is 1 under Rosetta, 0 native, and the key is
	// absent entirely on Intel machines; absence means not translated.
	translated := false
	if v, err := executil.CaptureCMD("sysctl", "-n", "sysctl.proc_translated"); err == nil {
		translated = strings.TrimSpace(v) == "1"
	}

	return arch, translated, nil
}

// ParseArchFallback maps the build-time architecture with no translation
// signal available.
func ParseArchFallback(goarch string) (Arch, bool, error) {
	a, err := ParseArch(goarch)
	return a, false, err
}
