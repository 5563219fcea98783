package cli

import (
	"context"

	"github.com/spf13/cobra"

	"scribeci/internal/modelfetch"
)

// fetchModelCmd is the macOS postinstall collaborator. It exits non-zero on
// download failure so the installer log records the error; there is no
// retry at this layer.
var fetchModelCmd = &cobra.Command{
	Use:   "fetch-model",
	Short: "Download the transcription model if absent",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), appConfig.Model.Timeout)
		defer cancel()

		f := modelfetch.Fetcher{
			URL:     appConfig.Model.URL,
			Dest:    appConfig.Model.Dest,
			MinSize: appConfig.Model.MinSize,
		}
		return f.Fetch(ctx)
	},
}
