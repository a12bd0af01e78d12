package cli

import (
	"fmt"
	"os"

	"github.com/maximal-ai/maximal/internal/config"
	"github.com/maximal-ai/maximal/internal/output"
	"github.com/maximal-ai/maximal/internal/updater"
	"github.com/spf13/cobra"
)

var (
	upgradeCheck   bool
	upgradeVersion string
)

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Update the CLI to the latest release",
	Long: `Downloads the latest GitHub release for this platform, verifies its
checksum, and replaces the running binary. The previous binary is kept
as a backup until the new one passes verification.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		p := output.NewPrinter(out, output.IsTTY(out))

		u := updater.New(buildVersion)

		var release *updater.Release
		var err error
		if upgradeVersion != "" {
			release, err = u.ByTag(upgradeVersion)
		} else {
			release, err = u.Latest()
		}
		if err != nil {
			return err
		}

		available, err := updater.IsUpdateAvailable(buildVersion, release.Version)
		if err != nil {
			// Dev builds carry non-semver versions; treat any release as new.
			available = true
		}

		if upgradeCheck {
			if available {
				p.Info("update available: %s -> %s", buildVersion, release.Version)
			} else {
				p.Success("already up to date (%s)", buildVersion)
			}
			return nil
		}

		if !available && upgradeVersion == "" {
			p.Success("already up to date (%s)", buildVersion)
			return nil
		}

		tmpDir, err := os.MkdirTemp("", "maximal-upgrade-*")
		if err != nil {
			return fmt.Errorf("creating temp directory: %w", err)
		}
		defer os.RemoveAll(tmpDir)

		p.Info("downloading %s", release.Version)
		archive, err := u.Download(release, tmpDir)
		if err != nil {
			return err
		}
		if err := u.VerifyChecksum(release, archive); err != nil {
			return err
		}

		binPath, err := updater.ExtractBinary(archive, tmpDir)
		if err != nil {
			return err
		}

		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("locating current binary: %w", err)
		}
		if err := updater.ReplaceBinary(binPath, exe, release.Version); err != nil {
			return err
		}

		_ = updater.SaveCache(config.Dir(), &updater.VersionCache{
			LatestVersion:   release.Version,
			CurrentVersion:  release.Version,
			UpdateAvailable: false,
		})

		p.Success("updated to %s", release.Version)
		return nil
	},
}

func init() {
	upgradeCmd.Flags().BoolVar(&upgradeCheck, "check", false, "only check whether an update is available")
	upgradeCmd.Flags().StringVar(&upgradeVersion, "version", "", "install a specific release tag")
	rootCmd.AddCommand(upgradeCmd)
}
