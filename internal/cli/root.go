package cli

import (
	"os"

	"github.com/maximal-ai/maximal/internal/branding"
	"github.com/maximal-ai/maximal/internal/config"
	"github.com/maximal-ai/maximal/internal/output"
	"github.com/maximal-ai/maximal/internal/updater"
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
	Long: branding.DisplayName() + ` installs the RPI (Research → Plan → Implement) workflow
file set and the RDF documentation framework into target projects.

Run without arguments for an interactive menu.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	rootCmd.Version = version

	config.Load()

	// Dev builds skip the release check.
	if version != "" && version != "dev" {
		updater.New(version).CheckAndPrintBanner(os.Stderr, config.Dir())
	}

	if err := rootCmd.Execute(); err != nil {
		p := output.NewPrinter(os.Stderr, output.IsTTY(os.Stderr))
		p.Error("%v", err)
		return err
	}
	return nil
}
