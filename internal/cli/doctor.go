package cli

import (
	"fmt"
	"os"

	"github.com/maximal-ai/maximal/internal/branding"
	"github.com/maximal-ai/maximal/internal/config"
	"github.com/maximal-ai/maximal/internal/identity"
	"github.com/maximal-ai/maximal/internal/manifest"
	"github.com/maximal-ai/maximal/internal/output"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the local installation environment",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		p := output.NewPrinter(out, output.IsTTY(out))

		problems := 0

		payloadDir := config.PayloadDir()
		if _, err := os.Stat(payloadDir); err != nil {
			p.Error("payload directory %s not found; set %s or the %s config key",
				payloadDir, branding.EnvVar("HOME"), config.KeyPayloadDir)
			problems++
		} else {
			p.Success("payload directory: %s", payloadDir)
			if m, err := manifest.Load(payloadDir); err != nil {
				p.Error("manifest: %v", err)
				problems++
			} else {
				p.Success("manifest: %s (%d files)", m.Name, len(m.Files))
				if err := manifest.CheckCLIVersion(m, buildVersion); err != nil {
					p.Error("%v", err)
					problems++
				}
			}
		}

		projectRoot, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}
		username := identity.Resolve(projectRoot)
		if username == identity.DefaultUsername {
			p.Warn("no username source found; installs will record %q", username)
		} else {
			p.Success("username: %s", username)
		}

		if ext := config.ExternalDocsPath(); ext != "" {
			if _, err := os.Stat(ext); err != nil {
				p.Warn("EXTERNAL_DOCS_PATH %s does not exist", ext)
			} else {
				p.Success("external docs: %s", ext)
			}
		} else {
			p.Dim("external docs: not configured")
		}

		if problems > 0 {
			return fmt.Errorf("doctor found %d problem(s)", problems)
		}
		p.Success("environment looks healthy")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
