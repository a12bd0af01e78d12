package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/maximal-ai/maximal/internal/output"
	"github.com/maximal-ai/maximal/internal/scaffold"
	"github.com/spf13/cobra"
)

var scaffoldDryRun bool

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold [path]",
	Short: "Create or refresh per-folder .folder.md documentation",
	Long: `Walks the tree and creates a .folder.md in every directory that
lacks one. Content above the auto-generated marker is human-authored
and always preserved; the file listing below it is regenerated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		p := output.NewPrinter(out, output.IsTTY(out))

		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		if _, err := os.Stat(root); err != nil {
			return fmt.Errorf("path %s not found", root)
		}

		result, err := scaffold.All(root, scaffoldDryRun)
		if err != nil {
			return err
		}

		for _, dir := range result.Created {
			p.Success("%s", filepath.Join(dir, scaffold.FolderDocName))
		}
		for _, dir := range result.Updated {
			p.Info("refreshed %s", filepath.Join(dir, scaffold.FolderDocName))
		}
		if scaffoldDryRun {
			p.Info("dry run: %d folder docs would be created, %d refreshed", len(result.Created), len(result.Updated))
		} else if len(result.Created)+len(result.Updated) == 0 {
			p.Dim("nothing to do")
		}
		return nil
	},
}

func init() {
	scaffoldCmd.Flags().BoolVar(&scaffoldDryRun, "dry-run", false, "preview without writing")
	rootCmd.AddCommand(scaffoldCmd)
}
