// internal/buildjob/run.go
package buildjob

import (
	"errors"
	"fmt"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"scribeci/internal/artifact"
	"scribeci/internal/executil"
)

// runStep executes one step's command. Swappable in tests so the abort
// path does not depend on the host toolchain.
var runStep = executil.RunCMD

// Run executes one build job: every planned step strictly in order, then
// the mandatory rename to the canonical public-facing name. The first
// failing step aborts the job and nothing is finalized — partial outputs
// never reach the upload layer. Retries are the CI runner's concern, not
// ours.
func Run(o Options) (artifact.Artifact, error) {
	if o.Target == "" {
		return artifact.Artifact{}, errors.New("buildjob: no target")
	}
	if o.OutputDir == "" {
		o.OutputDir = "dist"
	}

	steps := PlanSteps(o)
	if len(steps) == 0 {
		return artifact.Artifact{}, fmt.Errorf("buildjob: no steps planned for target %s", o.Target)
	}

	log.Infof("[build] target %s: %d steps", o.Target, len(steps))
	for i, step := range steps {
		log.Infof("[build] step %d/%d: %s", i+1, len(steps), step.Name)
		var err error
		if o.DryRun {
			err = executil.DryRunCMD(step.Cmd, step.Args...)
		} else {
			err = runStep(step.Cmd, step.Args...)
		}
		if err != nil {
			return artifact.Artifact{}, fmt.Errorf("buildjob %s: step %q: %w", o.Target, step.Name, err)
		}
	}

	if o.DryRun {
		log.Infof("[build] dry-run: would finalize %s -> %s", o.Target.InstallerName(), o.Target.CanonicalName())
		return artifact.Artifact{
			Target: o.Target,
			Name:   o.Target.CanonicalName(),
			Path:   filepath.Join(o.OutputDir, o.Target.CanonicalName()),
		}, nil
	}

	art, err := artifact.Finalize(o.OutputDir, o.Target)
	if err != nil {
		return artifact.Artifact{}, fmt.Errorf("buildjob %s: %w", o.Target, err)
	}

	log.Infof("[build] produced %s", art.Name)
	return art, nil
}
