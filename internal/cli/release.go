package cli

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"scribeci/internal/artifact"
	"scribeci/internal/assembler"
	"scribeci/internal/runtime"
	"scribeci/pkg/github"
)

var releaseNotesFile string

var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Assemble and publish the release for the current tag",
	Long: `Collect every expected build artifact, classify the tag, and
publish one release with all artifacts attached. Runs downstream of the
build-job barrier; if any artifact is missing this fails without creating
a release.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := runtime.LoadContext()
		if err != nil {
			return fmt.Errorf("failed to load context: %w", err)
		}
		if !ctx.IsTag {
			return fmt.Errorf("release requires a tag pipeline, got ref type %q", ctx.RefType)
		}

		arts, err := artifact.NewCollector(appConfig.Build.ArtifactDir).Collect()
		if err != nil {
			return fmt.Errorf("artifact barrier not satisfied: %w", err)
		}

		var notes string
		if releaseNotesFile != "" {
			data, err := os.ReadFile(releaseNotesFile)
			if err != nil {
				return fmt.Errorf("failed to read notes file: %w", err)
			}
			notes = string(data)
		}

		if ctx.DryRun {
			log.Infof("[release] dry-run: would publish %s (prerelease=%t) with %d assets",
				ctx.Tag.Raw, ctx.Tag.Prerelease(), len(arts))
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
		rel, err := asm.Publish(assembler.Input{Tag: ctx.Tag, Artifacts: arts, Notes: notes})
		if err != nil {
			return err
		}

		fmt.Printf("release: %s\n", rel.HTMLURL)
		return nil
	},
}

func init() {
	releaseCmd.Flags().StringVar(&releaseNotesFile, "notes-file", "", "file with changelog text for the What's Changed section")
}
