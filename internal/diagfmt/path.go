package diagfmt

import (
	"path/filepath"
)

// formatPath renders a file path according to mode. Failures of the
// filesystem-dependent modes fall back to the stored path.
func formatPath(path string, mode PathMode, baseDir string) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
	case PathModeRelative:
		if baseDir != "" {
			if rel, err := filepath.Rel(baseDir, path); err == nil {
				return rel
			}
		}
	case PathModeBasename:
		return filepath.Base(path)
	}
	return path
}
