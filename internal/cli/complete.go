package cli

import (
	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete",
	Short: "Install the RPI workflow and the full RDF framework",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runComplete(cmd)
	},
}

func init() {
	rootCmd.AddCommand(completeCmd)
}

func runComplete(cmd *cobra.Command) error {
	if err := runRPIInstall(cmd); err != nil {
		return err
	}
	return runRDFInstall(cmd, AllLayersSelection, false, false)
}
