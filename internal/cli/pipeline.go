package cli

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"scribeci/internal/assembler"
	"scribeci/internal/pipeline"
	"scribeci/internal/runtime"
	"scribeci/pkg/github"
)

var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Run all build jobs and, on a tag, assemble the release",
	Long: `Run the three build jobs in parallel, join on the barrier, and —
only when every job succeeded and the pipeline is a tag push — publish the
release. Mirrors the hosted CI topology for local runs and dry runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := runtime.LoadContext()
		if err != nil {
			return fmt.Errorf("failed to load context: %w", err)
		}
		ctx.PrintSummary()

		flow := runtime.ResolveFlow(ctx, runtime.FlowAuto)
		log.Infof("[pipeline] resolved flow: %s", flow)

		p := pipeline.New(appConfig.Build.SourceDir, appConfig.Build.ArtifactDir, ctx.DryRun)
		results, err := p.BuildAll()
		if err != nil {
			// barrier blocks: siblings finished above, but nothing publishes
			return err
		}

		if flow != runtime.FlowRelease {
			log.Infof("[pipeline] snapshot flow: artifacts built, nothing published")
			return nil
		}

		arts := pipeline.Artifacts(results)
		if ctx.DryRun {
			log.Infof("[pipeline] dry-run: would publish %s with %d assets", ctx.Tag.Raw, len(arts))
			return nil
		}

		client, err := github.NewClient(appConfig.GitHub.Timeout)
		if err != nil {
			return fmt.Errorf("github client init failed: %w", err)
		}

		asm := assembler.Assembler{
			Releases: client.Releases,
			Tags:     client.Tags,
			Repo:     client.Repo(),
		}
		rel, err := asm.Publish(assembler.Input{Tag: ctx.Tag, Artifacts: arts})
		if err != nil {
			return err
		}

		fmt.Printf("release: %s\n", rel.HTMLURL)
		return nil
	},
}
