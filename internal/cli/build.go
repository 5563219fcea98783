package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"scribeci/internal/artifact"
	"scribeci/internal/buildjob"
	"scribeci/internal/runtime"
)

var buildTarget string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run one platform build job",
	Long: `Run the build job for a single target and finalize its artifact
under the canonical public-facing name. This is what each parallel CI job
invokes; the jobs share nothing and each produces exactly one installer.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := artifact.ParseTarget(buildTarget)
		if err != nil {
			return err
		}

		ctx, err := runtime.LoadContext()
		if err != nil {
			return fmt.Errorf("failed to load context: %w", err)
		}

		art, err := buildjob.Run(buildjob.Options{
			Target:    target,
			SourceDir: appConfig.Build.SourceDir,
			OutputDir: appConfig.Build.ArtifactDir,
			DryRun:    ctx.DryRun,
		})
		if err != nil {
			return err
		}

		fmt.Printf("artifact: %s\n", art.Path)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVar(&buildTarget, "target", "", "build target: windows, macos-intel or macos-arm")
	_ = buildCmd.MarkFlagRequired("target")
}
