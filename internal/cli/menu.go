package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/maximal-ai/maximal/internal/branding"
	"github.com/maximal-ai/maximal/internal/output"
	"github.com/spf13/cobra"
)

// runMenu is the no-argument entry point: a numbered installer menu.
func runMenu(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	p := output.NewPrinter(out, output.IsTTY(out))

	p.Heading("%s installer", branding.DisplayName())
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  1) Install RPI workflow")
	fmt.Fprintln(out, "  2) Install RDF framework")
	fmt.Fprintln(out, "  3) Install both (complete)")
	fmt.Fprintln(out, "  4) Quit")
	fmt.Fprintln(out)
	fmt.Fprint(out, "? Select an option: ")

	choice := ""
	scanner := bufio.NewScanner(cmd.InOrStdin())
	if scanner.Scan() {
		choice = strings.TrimSpace(scanner.Text())
	}

	switch choice {
	case "1":
		return runRPIInstall(cmd)
	case "2":
		return runRDFInstall(cmd, AllLayersSelection, false, false)
	case "3":
		return runComplete(cmd)
	case "4", "q", "quit":
		return nil
	default:
		return fmt.Errorf("invalid selection %q: choose a number between 1 and 4", choice)
	}
}
