// Package cli wires the scribeci subcommands. One binary covers every role
// in the pipeline: the per-platform build jobs, the release assembler run
// after the barrier, the install-time platform gate, and the postinstall
// model fetch.
package cli

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"scribeci/internal/config"
)

var appConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "scribeci",
	Short: "FreeScribe release pipeline tool",
	Long: `scribeci builds, gates and publishes FreeScribe desktop releases.

It runs in three places:
- GitHub Actions build jobs (scribeci build, scribeci release)
- macOS installer packages (scribeci gate, run by the preinstall script)
- macOS postinstall (scribeci fetch-model)`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var err error
		appConfig, err = config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
			os.Exit(1)
		}
		initLogger(appConfig)
	},
}

func initLogger(cfg *config.Config) {
	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	}
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

// Execute runs the root command. Build and release failures surface through
// the process exit status, which is the CI layer's native failure signal.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(releaseCmd)
	rootCmd.AddCommand(pipelineCmd)
	rootCmd.AddCommand(gateCmd)
	rootCmd.AddCommand(fetchModelCmd)
	rootCmd.AddCommand(summaryCmd)
}
