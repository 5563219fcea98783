// internal/pipeline/pipeline.go
//
// Local orchestration of the three build jobs. In CI each job runs on its
// own isolated runner; here they run as independent goroutines with no
// shared state, which preserves the same contract: siblings run to
// completion even when one fails, and the barrier after the join decides
// whether assembly may proceed. The barrier fails closed — one failed job
// means nothing is published.

package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"scribeci/internal/artifact"
	"scribeci/internal/buildjob"
)

// JobRunner runs one build job. Injectable so tests don't shell out.
type JobRunner func(buildjob.Options) (artifact.Artifact, error)

type Pipeline struct {
	Targets   []artifact.Target
	SourceDir string
	OutputDir string
	DryRun    bool

	Run JobRunner // defaults to buildjob.Run
}

func New(sourceDir, outputDir string, dryRun bool) *Pipeline {
	return &Pipeline{
		Targets:   artifact.All(),
		SourceDir: sourceDir,
		OutputDir: outputDir,
		DryRun:    dryRun,
		Run:       buildjob.Run,
	}
}

// BuildAll fans the build jobs out in parallel and joins on all of them.
// Every result is returned so the caller can log per-job outcomes; the
// error is non-nil if any job failed, and in that case no artifact list is
// handed onward.
func (p *Pipeline) BuildAll() ([]buildjob.Result, error) {
	run := p.Run
	if run == nil {
		run = buildjob.Run
	}

	results := make([]buildjob.Result, len(p.Targets))

	var wg sync.WaitGroup
	for i, target := range p.Targets {
		wg.Add(1)
		go func(i int, target artifact.Target) {
			defer wg.Done()
			// each job packages into its own directory: the macOS
			// variants share an internal installer name, so a common
			// directory would let one job finalize the other's bytes
			art, err := run(buildjob.Options{
				Target:    target,
				SourceDir: p.SourceDir,
				OutputDir: filepath.Join(p.OutputDir, target.String()),
				DryRun:    p.DryRun,
			})
			results[i] = buildjob.Result{Target: target, Artifact: art, Err: err}
		}(i, target)
	}
	wg.Wait()

	var failed []string
	for _, res := range results {
		if res.Err != nil {
			log.Errorf("[pipeline] job %s failed: %v", res.Target, res.Err)
			failed = append(failed, res.Target.String())
		} else {
			log.Infof("[pipeline] job %s produced %s", res.Target, res.Artifact.Name)
		}
	}

	if len(failed) > 0 {
		return results, fmt.Errorf("build jobs failed: %s", strings.Join(failed, ", "))
	}
	return results, nil
}

// Artifacts extracts the artifact list from a fully successful result set.
func Artifacts(results []buildjob.Result) []artifact.Artifact {
	out := make([]artifact.Artifact, 0, len(results))
	for _, res := range results {
		if res.Err == nil {
			out = append(out, res.Artifact)
		}
	}
	return out
}
