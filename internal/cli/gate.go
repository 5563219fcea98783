package cli

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"scribeci/internal/gate"
)

var (
	gateExpect     string
	gateReported   string
	gateTranslated bool
)

// gateCmd is invoked by the installer's preinstall script. Exit code 0 lets
// the install proceed, exit code 1 aborts it; the installer shows the
// message as a modal dialog.
var gateCmd = &cobra.Command{
	Use:   "gate",
	Short: "Install-time architecture gate",
	Long: `Check that this machine's architecture matches the one this
installer was built for, correcting for Rosetta translation. One binary
serves both installer variants; --expect selects which one this is.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		expected, err := gate.ParseArch(gateExpect)
		if err != nil {
			return err
		}

		reported, translated, err := gateInputs(gateReported, gateTranslated, cmd.Flags().Changed("translated"))
		if err != nil {
			return err
		}

		g := gate.Gate{
			Expected: expected,
			Log:      gate.NewFileSink(appConfig.Gate.LogPath),
		}

		res, logErr := g.Check(reported, translated)
		if logErr != nil {
			// the decision stands even when the diagnostic log is unwritable
			log.Warnf("[gate] diagnostic log: %v", logErr)
		}

		if !res.OK {
			fmt.Fprintln(os.Stderr, g.Message(res))
			// distinguish "wrong machine" from scribeci's own failures:
			// cobra reports RunE errors as exit 1 too, but the installer
			// only cares about zero vs non-zero
			os.Exit(1)
		}

		fmt.Println(g.Message(res))
		return nil
	},
}

// gateInputs resolves the reported architecture and translation signal from
// the override flags, falling back to detection. An explicit --translated
// wins over the detected value even when --reported is absent.
func gateInputs(reportedFlag string, translatedFlag, translatedSet bool) (gate.Arch, bool, error) {
	if reportedFlag != "" {
		reported, err := gate.ParseArch(reportedFlag)
		return reported, translatedFlag, err
	}

	reported, translated, err := gate.Detect()
	if err != nil {
		return "", false, err
	}
	if translatedSet {
		translated = translatedFlag
	}
	return reported, translated, nil
}

func init() {
	gateCmd.Flags().StringVar(&gateExpect, "expect", "", "architecture this installer was built for (x86_64 or arm64)")
	gateCmd.Flags().StringVar(&gateReported, "reported", "", "override the detected architecture (testing)")
	gateCmd.Flags().BoolVar(&gateTranslated, "translated", false, "override the translation-layer signal (testing)")
	_ = gateCmd.MarkFlagRequired("expect")
}
