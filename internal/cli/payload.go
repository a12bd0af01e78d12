package cli

import (
	"os"

	"github.com/maximal-ai/maximal/internal/config"
	"github.com/maximal-ai/maximal/internal/output"
	"github.com/maximal-ai/maximal/internal/payload"
	"github.com/spf13/cobra"
)

var payloadCmd = &cobra.Command{
	Use:   "payload",
	Short: "Manage the local payload repository",
}

var payloadUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Clone or pull the payload repository",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		p := output.NewPrinter(out, output.IsTTY(out))

		dir := config.PayloadDir()
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			p.Info("cloning %s into %s", payload.RepoURL(), dir)
			if err := payload.Clone(dir); err != nil {
				return err
			}
		} else {
			p.Info("updating payload in %s", dir)
			if err := payload.Update(dir); err != nil {
				return err
			}
		}

		p.Success("payload up to date")
		return nil
	},
}

var payloadStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show payload location and freshness",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		p := output.NewPrinter(out, output.IsTTY(out))

		dir := config.PayloadDir()
		if _, err := os.Stat(dir); err != nil {
			p.Warn("payload directory %s not found; run `payload update`", dir)
			return nil
		}

		p.Info("payload: %s", dir)
		if last := payload.ReadFreshnessMarker(dir); !last.IsZero() {
			p.Info("last synced: %s", last.Format("2006-01-02 15:04"))
		}
		if payload.IsStale(dir, payload.DefaultMaxAge) {
			p.Warn("payload has not been synced recently; run `payload update`")
		} else {
			p.Success("payload is fresh")
		}
		return nil
	},
}

func init() {
	payloadCmd.AddCommand(payloadUpdateCmd)
	payloadCmd.AddCommand(payloadStatusCmd)
	rootCmd.AddCommand(payloadCmd)
}
