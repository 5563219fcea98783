package buildjob

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scribeci/internal/artifact"
)

func TestPlanStepsWindows(t *testing.T) {
	steps := PlanSteps(Options{Target: artifact.Windows, SourceDir: ".", OutputDir: "dist"})

	require.Len(t, steps, 4)
	assert.Equal(t, "install dependencies", steps[0].Name)
	assert.Equal(t, "package freescribe-client-nvidia", steps[1].Name)
	assert.Equal(t, "package freescribe-client-cpu", steps[2].Name)
	assert.Equal(t, "build windows installer", steps[3].Name)
	assert.Equal(t, "makensis", steps[3].Cmd)
}

func TestPlanStepsMacOS(t *testing.T) {
	for _, target := range []artifact.Target{artifact.MacOSIntel, artifact.MacOSARM} {
		steps := PlanSteps(Options{Target: target, SourceDir: ".", OutputDir: "dist"})

		require.Len(t, steps, 3, target)
		assert.Equal(t, "pkgbuild", steps[2].Cmd, target)
		// installer comes out under the internal name; the rename to the
		// canonical one happens in Run
		assert.Contains(t, steps[2].Args, "dist/FreeScribeInstaller.pkg", target)
	}
}

func TestRunDryRun(t *testing.T) {
	art, err := Run(Options{Target: artifact.Windows, OutputDir: "dist", DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, "FreeScribeInstaller_windows.exe", art.Name)
	assert.Equal(t, artifact.Windows, art.Target)
}

func TestRunRequiresTarget(t *testing.T) {
	_, err := Run(Options{})
	require.Error(t, err)
}

func TestRunAbortsOnStepFailure(t *testing.T) {
	orig := runStep
	defer func() { runStep = orig }()

	var ran []string
	runStep = func(name string, args ...string) error {
		ran = append(ran, name)
		return errors.New("toolchain missing")
	}

	dir := t.TempDir()
	_, err := Run(Options{Target: artifact.MacOSARM, SourceDir: dir, OutputDir: dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "install dependencies")

	// first failure aborts; later steps never run and nothing finalizes
	assert.Equal(t, []string{"pip"}, ran)
	assert.NoFileExists(t, dir+"/FreeScribeInstaller_arm64.pkg")
}

func TestRunFinalizesAfterSteps(t *testing.T) {
	orig := runStep
	defer func() { runStep = orig }()

	dir := t.TempDir()
	runStep = func(name string, args ...string) error {
		if name == "pkgbuild" {
			return os.WriteFile(filepath.Join(dir, "FreeScribeInstaller.pkg"), []byte("pkg"), 0o644)
		}
		return nil
	}

	art, err := Run(Options{Target: artifact.MacOSIntel, SourceDir: dir, OutputDir: dir})
	require.NoError(t, err)
	assert.Equal(t, "FreeScribeInstaller_x86_64.pkg", art.Name)
	assert.FileExists(t, filepath.Join(dir, "FreeScribeInstaller_x86_64.pkg"))
}
