package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scribeci/internal/artifact"
	"scribeci/internal/buildjob"
)

func TestBuildAllSuccess(t *testing.T) {
	p := New(".", "dist", true)
	p.Run = func(o buildjob.Options) (artifact.Artifact, error) {
		return artifact.Artifact{Target: o.Target, Name: o.Target.CanonicalName()}, nil
	}

	results, err := p.BuildAll()
	require.NoError(t, err)
	require.Len(t, results, 3)

	arts := Artifacts(results)
	require.Len(t, arts, 3)
	assert.Equal(t, "FreeScribeInstaller_windows.exe", arts[0].Name)
}

func TestBuildAllSiblingsFinishWhenOneFails(t *testing.T) {
	var ran atomic.Int64
	p := New(".", "dist", true)
	p.Run = func(o buildjob.Options) (artifact.Artifact, error) {
		ran.Add(1)
		if o.Target == artifact.MacOSIntel {
			return artifact.Artifact{}, errors.New("pkgbuild exploded")
		}
		return artifact.Artifact{Target: o.Target, Name: o.Target.CanonicalName()}, nil
	}

	results, err := p.BuildAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "macos-intel")

	// one failure does not cancel the siblings
	assert.Equal(t, int64(3), ran.Load())
	require.Len(t, results, 3)

	// the barrier hands only the successful artifacts onward, and the
	// caller must treat the error as blocking publication
	assert.Len(t, Artifacts(results), 2)
}

func TestBuildAllIsolatesJobOutputDirs(t *testing.T) {
	root := t.TempDir()
	p := New(".", root, false)
	// emulate a packager: write the internal installer name into the
	// job's output dir, then the mandatory finalize rename. Both macOS
	// variants emit the same internal name, so this only survives the
	// concurrent fan-out if the jobs really are isolated.
	p.Run = func(o buildjob.Options) (artifact.Artifact, error) {
		if err := os.MkdirAll(o.OutputDir, 0o755); err != nil {
			return artifact.Artifact{}, err
		}
		payload := []byte(o.Target.String())
		path := filepath.Join(o.OutputDir, o.Target.InstallerName())
		if err := os.WriteFile(path, payload, 0o644); err != nil {
			return artifact.Artifact{}, err
		}
		return artifact.Finalize(o.OutputDir, o.Target)
	}

	results, err := p.BuildAll()
	require.NoError(t, err)
	require.Len(t, results, 3)

	seenDirs := map[string]bool{}
	for _, res := range results {
		data, err := os.ReadFile(res.Artifact.Path)
		require.NoError(t, err)
		assert.Equal(t, res.Target.String(), string(data),
			"%s must carry its own job's bytes", res.Artifact.Name)

		dir := filepath.Dir(res.Artifact.Path)
		assert.False(t, seenDirs[dir], "jobs must not share an output directory")
		seenDirs[dir] = true
	}
}

func TestBuildAllAllFail(t *testing.T) {
	p := New(".", "dist", true)
	p.Run = func(o buildjob.Options) (artifact.Artifact, error) {
		return artifact.Artifact{}, errors.New("no toolchain")
	}

	results, err := p.BuildAll()
	require.Error(t, err)
	assert.Empty(t, Artifacts(results))
}
