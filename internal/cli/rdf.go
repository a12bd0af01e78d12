package cli

import (
	"fmt"
	"os"

	"github.com/maximal-ai/maximal/internal/config"
	"github.com/maximal-ai/maximal/internal/output"
	"github.com/maximal-ai/maximal/internal/rdf"
	"github.com/spf13/cobra"
)

// AllLayersSelection selects every RDF layer (empty spec means all).
const AllLayersSelection = ""

var (
	rdfLayers string
	rdfGlobal bool
	rdfLocal  bool
	rdfDryRun bool
	rdfSource string
)

var rdfCmd = &cobra.Command{
	Use:   "rdf-framework",
	Short: "Install the RDF documentation framework",
	Long: `Installs the 5-layer RDF documentation framework:

  1  core-docs    docs/AGENTS.md and .repomap.yaml
  2  ai-guidance  docs/ai/ protocols, checklists, and prompts
  3  folder-docs  docs/templates/ and per-folder .folder.md files
  4  repomap      REPOMAP.yaml ranked source index
  5  decisions    architecture decision records

By default all layers install into the current project. Use --layers to
pick a subset and --global to target the shared config directory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRDFInstall(cmd, rdfLayers, rdfGlobal, rdfDryRun)
	},
}

func init() {
	rdfCmd.Flags().StringVarP(&rdfLayers, "layers", "l", "", "comma-separated layer numbers (default: all)")
	rdfCmd.Flags().BoolVar(&rdfGlobal, "global", false, "install into the global config directory")
	rdfCmd.Flags().BoolVar(&rdfLocal, "local", false, "install into the current project (default)")
	rdfCmd.Flags().BoolVar(&rdfDryRun, "dry-run", false, "preview without writing")
	rdfCmd.Flags().StringVar(&rdfSource, "source", "", "source tree to scaffold and index (default: install root)")
	rdfCmd.MarkFlagsMutuallyExclusive("global", "local")
	rootCmd.AddCommand(rdfCmd)
}

func runRDFInstall(cmd *cobra.Command, layersSpec string, global, dryRun bool) error {
	out := cmd.OutOrStdout()
	p := output.NewPrinter(out, output.IsTTY(out))

	layers, err := rdf.ParseLayers(layersSpec)
	if err != nil {
		return err
	}

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}
	if global {
		root = config.Dir()
		if err := config.EnsureDir(); err != nil {
			return err
		}
	}

	if dryRun {
		p.Heading("RDF framework (dry run): %s", root)
	} else {
		p.Heading("Installing RDF framework into %s", root)
	}

	result, err := rdf.Install(root, layers, rdf.Options{
		DryRun:           dryRun,
		SourceDir:        rdfSource,
		ExternalDocsPath: config.ExternalDocsPath(),
	})
	if err != nil {
		return err
	}

	for _, dir := range result.Dirs {
		p.Info("dir  %s", dir)
	}
	for _, file := range result.Files {
		p.Success("%s", file)
	}
	for _, file := range result.Skipped {
		p.Dim("%s exists, skipped", file)
	}
	for _, file := range result.Preserved {
		p.Warn("%s is user-owned; wrote %s.new, merge manually", file, file)
	}

	if dryRun {
		p.Info("dry run: %d files would be written", len(result.Files))
	} else {
		p.Success("RDF layers %v installed", layers)
	}
	return nil
}
