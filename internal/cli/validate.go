package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/maximal-ai/maximal/internal/identity"
	"github.com/maximal-ai/maximal/internal/output"
	"github.com/maximal-ai/maximal/internal/repomap"
	"github.com/maximal-ai/maximal/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	validatePath   string
	validateStrict bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check documentation coverage in a project",
	Long: `Reports directories missing .folder.md docs, a missing REPOMAP.yaml,
and a missing project config. With --strict, any finding fails the
command.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		p := output.NewPrinter(out, output.IsTTY(out))

		root := validatePath
		if root == "" {
			var err error
			root, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("resolving working directory: %w", err)
			}
		}
		if _, err := os.Stat(root); err != nil {
			return fmt.Errorf("path %s not found", root)
		}

		findings := 0

		missing, err := scaffold.Scan(root)
		if err != nil {
			return err
		}
		for _, dir := range missing {
			p.Warn("%s has no %s", dir, scaffold.FolderDocName)
			findings++
		}

		if _, err := os.Stat(filepath.Join(root, repomap.DefaultOutputName)); err != nil {
			p.Warn("%s not found; run the repomap command", repomap.DefaultOutputName)
			findings++
		}

		if _, err := os.Stat(identity.ConfigPath(root)); err != nil {
			p.Warn("%s not found; run rpi-workflow to create it", identity.ConfigPath(root))
			findings++
		}

		if findings == 0 {
			p.Success("documentation coverage looks complete")
			return nil
		}
		p.Info("%d finding(s)", findings)
		if validateStrict {
			return fmt.Errorf("validation failed with %d finding(s)", findings)
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validatePath, "path", "", "project root to validate (default: current directory)")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "exit non-zero on any finding")
	rootCmd.AddCommand(validateCmd)
}
