package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"venti/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "venti",
	Short: "Venti language compiler and toolchain",
	Long:  `Venti compiles .vt source files to textual LLVM IR`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// resolveColor reads the --color flag and forces the global color state when
// the user asked for an explicit mode.
func resolveColor(cmd *cobra.Command) bool {
	flag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		flag = "auto"
	}
	switch flag {
	case "on":
		color.NoColor = false
		return true
	case "off":
		color.NoColor = true
		return false
	default:
		return isTerminal(os.Stderr)
	}
}
