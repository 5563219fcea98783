// internal/buildjob/plan.go
//
// The planner converts a build target into the ordered step list for that
// platform. Windows carries the accelerator axis: both client payloads
// (nvidia and cpu) come out of the single Windows job and are folded into
// one installer. Policy lives here; run.go just executes.

package buildjob

import (
	"fmt"
	"path/filepath"

	"scribeci/internal/artifact"
)

func PlanSteps(o Options) []Step {
	src := o.SourceDir
	if src == "" {
		src = "."
	}

	steps := []Step{
		{
			Name: "install dependencies",
			Cmd:  "pip",
			Args: []string{"install", "-r", filepath.Join(src, "requirements.txt")},
		},
	}

	switch o.Target {
	case artifact.Windows:
		// one payload per accelerator variant, then one installer
		for _, payload := range o.Target.PayloadNames() {
			steps = append(steps, Step{
				Name: fmt.Sprintf("package %s", payload),
				Cmd:  "pyinstaller",
				Args: []string{"--noconfirm", "--distpath", o.OutputDir, filepath.Join(src, payload+".spec")},
			})
		}
		steps = append(steps, Step{
			Name: "build windows installer",
			Cmd:  "makensis",
			Args: []string{"-DOUTDIR=" + o.OutputDir, filepath.Join(src, "scripts", "install.nsi")},
		})

	case artifact.MacOSIntel, artifact.MacOSARM:
		steps = append(steps,
			Step{
				Name: "package freescribe-client",
				Cmd:  "pyinstaller",
				Args: []string{"--noconfirm", "--distpath", o.OutputDir, filepath.Join(src, "freescribe-client.spec")},
			},
			Step{
				Name: "build macos installer package",
				Cmd:  "pkgbuild",
				Args: []string{
					"--root", filepath.Join(o.OutputDir, "freescribe-client"),
					"--identifier", "com.clinicianfocus.freescribe",
					"--install-location", "/Applications/FreeScribe",
					"--scripts", filepath.Join(src, "scripts", "macos"),
					filepath.Join(o.OutputDir, o.Target.InstallerName()),
				},
			},
		)
	}

	return steps
}
