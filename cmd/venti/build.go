package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"venti/internal/diagfmt"
	"venti/internal/driver"
	"venti/internal/project"
)

const noVentiTomlMessage = "no venti.toml found\nplease specify the source file explicitly, e.g.:\n  venti build path/to/main.vt"

var buildCmd = &cobra.Command{
	Use:   "build [flags] [file.vt]",
	Short: "Compile a venti source file to textual LLVM IR",
	Long: `Build compiles a venti source file to a .ll artifact. Without an
argument it looks for a venti.toml manifest and builds its [build].main.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringP("out", "o", "", "output path (defaults to the source path with .ll)")
	buildCmd.Flags().Bool("no-cache", false, "bypass the artifact cache")
}

func runBuild(cmd *cobra.Command, args []string) error {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	outFlag, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("failed to get out flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}

	srcPath, outPath, moduleName, err := resolveBuildTarget(args, outFlag)
	if err != nil {
		return err
	}

	var cache *driver.DiskCache
	if !noCache {
		// A broken cache directory degrades to uncached builds.
		cache, _ = driver.OpenDiskCache("venti")
	}

	result, err := driver.Compile(srcPath, driver.CompileOptions{
		MaxDiagnostics: maxDiagnostics,
		ModuleName:     moduleName,
		OutPath:        outPath,
		Cache:          cache,
	})
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:   resolveColor(cmd),
			Context: 2,
		})
	}
	if !result.Ok {
		return fmt.Errorf("build failed: %s", srcPath)
	}

	if !quiet {
		suffix := ""
		if result.Cached {
			suffix = " (cached)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s%s\n", outPath, suffix)
	}
	return nil
}

// resolveBuildTarget decides what to compile and where the artifact goes:
// an explicit argument wins, otherwise the nearest manifest supplies both.
func resolveBuildTarget(args []string, outFlag string) (src, out, moduleName string, err error) {
	if len(args) == 1 {
		src = args[0]
		if filepath.Ext(src) != ".vt" {
			return "", "", "", fmt.Errorf("%s: source file must have a .vt extension", src)
		}
		out = outFlag
		if out == "" {
			out = strings.TrimSuffix(src, ".vt") + ".ll"
		}
		return src, out, "", nil
	}

	manifest, found, err := project.Load(".")
	if err != nil {
		return "", "", "", err
	}
	if !found {
		return "", "", "", fmt.Errorf("%s", noVentiTomlMessage)
	}

	src, err = manifest.MainPath()
	if err != nil {
		return "", "", "", err
	}
	out = outFlag
	if out == "" {
		out = manifest.OutPath()
	}
	return src, out, manifest.Config.Package.Name, nil
}
