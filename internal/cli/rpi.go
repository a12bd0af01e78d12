package cli

import (
	"fmt"
	"os"

	"github.com/maximal-ai/maximal/internal/branding"
	"github.com/maximal-ai/maximal/internal/config"
	"github.com/maximal-ai/maximal/internal/identity"
	"github.com/maximal-ai/maximal/internal/installer"
	"github.com/maximal-ai/maximal/internal/manifest"
	"github.com/maximal-ai/maximal/internal/output"
	"github.com/spf13/cobra"
)

var (
	rpiSource        string
	rpiSkipGitignore bool
)

var rpiCmd = &cobra.Command{
	Use:   "rpi-workflow",
	Short: "Install the RPI workflow file set into the current project",
	Long: `Installs the Research → Plan → Implement workflow files (commands,
agent definitions, CLAUDE.md, thoughts/ directory) into the current
project, driven by the install.yaml manifest in the payload directory.

Re-running is safe: managed files are refreshed, user-owned files are
preserved with a .new sibling for manual merging.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRPIInstall(cmd)
	},
}

func init() {
	rpiCmd.Flags().StringVar(&rpiSource, "source", "", "payload directory (overrides "+branding.EnvVar("HOME")+" and config)")
	rpiCmd.Flags().BoolVar(&rpiSkipGitignore, "skip-gitignore", false, "do not patch the project .gitignore")
	rootCmd.AddCommand(rpiCmd)
}

func runRPIInstall(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	p := output.NewPrinter(out, output.IsTTY(out))

	payloadDir := rpiSource
	if payloadDir == "" {
		payloadDir = config.PayloadDir()
	}
	if _, err := os.Stat(payloadDir); err != nil {
		return fmt.Errorf("payload directory %s not found: clone the payload repository there, or point %s (or the %s config key) at it",
			payloadDir, branding.EnvVar("HOME"), config.KeyPayloadDir)
	}

	m, err := manifest.Load(payloadDir)
	if err != nil {
		return err
	}
	if err := manifest.CheckCLIVersion(m, buildVersion); err != nil {
		return err
	}

	projectRoot, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	username := identity.Resolve(projectRoot)

	p.Heading("Installing %s", m.Name)

	result, err := installer.Install(m, payloadDir, projectRoot, installer.Options{
		SkipGitignore: rpiSkipGitignore,
	})
	if err != nil {
		return err
	}

	created, err := identity.Persist(projectRoot, username)
	if err != nil {
		return err
	}

	for _, dir := range result.Dirs {
		p.Info("dir  %s", dir)
	}
	for _, file := range result.Installed {
		p.Success("%s", file)
	}
	for _, file := range result.Preserved {
		p.Warn("%s is user-owned; wrote %s.new, merge manually", file, file)
	}
	for _, line := range result.GitignoreAdded {
		p.Info(".gitignore += %s", line)
	}
	if created {
		p.Success("recorded username %q in %s", username, identity.ConfigPath(projectRoot))
	} else {
		p.Dim("username: %s", username)
	}

	p.Success("RPI workflow installed (%d files)", len(result.Installed))
	return nil
}
