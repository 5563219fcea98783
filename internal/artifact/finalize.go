package artifact

import (
	"fmt"
	"os"
	"path/filepath"
)

// Finalize renames the internal installer output to its canonical
// public-facing name inside dir and returns the finalized Artifact.
//
// The rename is idempotent: if the canonical file already exists and the
// internal one is gone, a second call is a no-op. If both names exist we
// cannot tell which is current, so that is an explicit error rather than a
// silent overwrite.
func Finalize(dir string, target Target) (Artifact, error) {
	internal := target.InstallerName()
	canonical := target.CanonicalName()

	src := filepath.Join(dir, internal)
	dst := filepath.Join(dir, canonical)

	srcExists := fileExists(src)
	dstExists := fileExists(dst)

	switch {
	case srcExists && dstExists:
		return Artifact{}, fmt.Errorf("finalize %s: both %s and %s exist, refusing to overwrite", target, internal, canonical)
	case dstExists:
		// already finalized
		return Artifact{Target: target, Name: canonical, Path: dst}, nil
	case srcExists:
		if err := os.Rename(src, dst); err != nil {
			return Artifact{}, fmt.Errorf("finalize %s: rename %s -> %s: %w", target, internal, canonical, err)
		}
		return Artifact{Target: target, Name: canonical, Path: dst}, nil
	default:
		return Artifact{}, fmt.Errorf("finalize %s: installer output %s not found in %s", target, internal, dir)
	}
}

func fileExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}
