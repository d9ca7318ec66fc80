package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"venti/internal/diagfmt"
	"venti/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.vt",
	Short: "Parse a venti source file and output its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Parse(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:   resolveColor(cmd),
			Context: 2,
		})
	}
	if !result.Ok {
		return fmt.Errorf("parsing failed: %s", filePath)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatASTPretty(os.Stdout, result.Builder, result.FileID, result.FileSet)
	case "json":
		return diagfmt.FormatASTJSON(os.Stdout, result.Builder, result.FileID, result.FileSet)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
