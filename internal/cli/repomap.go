package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/maximal-ai/maximal/internal/output"
	"github.com/maximal-ai/maximal/internal/repomap"
	"github.com/spf13/cobra"
)

var (
	repomapSource string
	repomapOutput string
)

var repomapCmd = &cobra.Command{
	Use:   "repomap",
	Short: "Generate the REPOMAP.yaml ranked source index",
	Long: `Indexes the source tree into REPOMAP.yaml: each file classified
(entry point, domain model, service, config, test), ranked, and trimmed
to the configured token budget. Settings come from .repomap.yaml when
present.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		p := output.NewPrinter(out, output.IsTTY(out))

		root, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}

		cfg, err := repomap.LoadConfig(filepath.Join(root, repomap.ConfigFileName))
		if err != nil {
			return err
		}

		source := repomapSource
		if source == "" {
			source = root
		}
		outPath := repomapOutput
		if outPath == "" {
			outPath = filepath.Join(root, repomap.DefaultOutputName)
		}

		m, err := repomap.Generate(source, outPath, cfg)
		if err != nil {
			return err
		}

		p.Success("wrote %s (%d files indexed, budget %d tokens)",
			outPath, m.Meta.FilesIndexed, m.Meta.TokenBudget)
		return nil
	},
}

func init() {
	repomapCmd.Flags().StringVar(&repomapSource, "source", "", "source tree to index (default: current directory)")
	repomapCmd.Flags().StringVar(&repomapOutput, "output", "", "output path (default: REPOMAP.yaml)")
	rootCmd.AddCommand(repomapCmd)
}
