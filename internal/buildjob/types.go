// internal/buildjob/types.go
package buildjob

import "scribeci/internal/artifact"

type Options struct {
	Target    artifact.Target
	SourceDir string // checkout root, default "."
	OutputDir string // where installer outputs land, default "dist"
	DryRun    bool   // print only
}

// Step is one sequential command in a build job. Steps depend on the
// filesystem state left by the previous one; there is no internal
// parallelism.
type Step struct {
	Name string
	Cmd  string
	Args []string
}

// Result is what one build job hands to the pipeline barrier.
type Result struct {
	Target   artifact.Target
	Artifact artifact.Artifact
	Err      error
}
