package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"venti/internal/diagfmt"
	"venti/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.vt|directory>",
	Short: "Compile venti sources without writing artifacts",
	Long:  `Check runs the full pipeline on a file or on every .vt file under a directory, reporting diagnostics only`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	target := args[0]

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	prettyOpts := diagfmt.PrettyOpts{
		Color:   resolveColor(cmd),
		Context: 2,
	}

	st, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if !st.IsDir() {
		result, err := driver.Compile(target, driver.CompileOptions{MaxDiagnostics: maxDiagnostics})
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
		if result.Bag.HasErrors() || result.Bag.HasWarnings() {
			result.Bag.Sort()
			diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, prettyOpts)
		}
		if !result.Ok {
			return fmt.Errorf("check failed: %s", target)
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", target)
		}
		return nil
	}

	results, err := driver.CheckDir(cmd.Context(), target, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Err)
			failed++
			continue
		}
		if r.Bag.HasErrors() || r.Bag.HasWarnings() {
			r.Bag.Sort()
			diagfmt.Pretty(os.Stderr, r.Bag, r.FileSet, prettyOpts)
		}
		if !r.Ok {
			failed++
		}
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "checked %d files, %d failed\n", len(results), failed)
	}
	if failed > 0 {
		return fmt.Errorf("check failed: %d of %d files", failed, len(results))
	}
	return nil
}
