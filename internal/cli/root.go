package cli

import (
	"os"

	"github.com/coursekit-labs/coursekit/internal/branding"
	"github.com/coursekit-labs/coursekit/internal/config"
	"github.com/coursekit-labs/coursekit/internal/updater"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds Canvas course content working directories
from a shared template and keeps their metadata in sync with the directory name.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Skip the banner for commands that report on state themselves.
		name := cmd.Name()
		if name == "version" || name == "doctor" {
			return
		}

		// Non-blocking banner from cached version check.
		u := updater.New(buildVersion)
		u.CheckAndPrintBanner(os.Stderr, config.Dir())
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
