package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is a loaded venti.toml together with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the venti.toml layout.
type Config struct {
	Package PackageConfig `toml:"package"`
	Build   BuildConfig   `toml:"build"`
}

type PackageConfig struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

type BuildConfig struct {
	// Main is the entry source file, relative to the project root.
	Main string `toml:"main"`
	// Out is the IR output path; empty derives it from Main.
	Out string `toml:"out"`
}

// FindManifest walks up from startDir to locate venti.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "venti.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and parses the nearest manifest above startDir. ok is false
// when no manifest exists; that is not an error.
func Load(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if !meta.IsDefined("build") {
		return Config{}, fmt.Errorf("%s: missing [build]", path)
	}
	if !meta.IsDefined("build", "main") || strings.TrimSpace(cfg.Build.Main) == "" {
		return Config{}, fmt.Errorf("%s: missing [build].main", path)
	}
	return cfg, nil
}

// MainPath resolves [build].main against the project root and validates the
// extension.
func (m *Manifest) MainPath() (string, error) {
	mainRel := strings.TrimSpace(m.Config.Build.Main)
	mainPath := filepath.Join(m.Root, filepath.FromSlash(mainRel))
	info, err := os.Stat(mainPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: [build].main path does not exist: %s", m.Path, mainPath)
		}
		return "", fmt.Errorf("%s: failed to stat [build].main: %w", m.Path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s: [build].main must be a .vt file, got a directory", m.Path)
	}
	if filepath.Ext(mainPath) != ".vt" {
		return "", fmt.Errorf("%s: [build].main must be a .vt file", m.Path)
	}
	return mainPath, nil
}

// OutPath resolves [build].out, defaulting to the entry file with its
// extension swapped for .ll.
func (m *Manifest) OutPath() string {
	if out := strings.TrimSpace(m.Config.Build.Out); out != "" {
		return filepath.Join(m.Root, filepath.FromSlash(out))
	}
	mainRel := strings.TrimSpace(m.Config.Build.Main)
	base := strings.TrimSuffix(mainRel, filepath.Ext(mainRel))
	return filepath.Join(m.Root, filepath.FromSlash(base+".ll"))
}

// DefaultManifestText renders the venti.toml scaffold for a new project.
func DefaultManifestText(name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[package]\n")
	fmt.Fprintf(&b, "name = %q\n", name)
	fmt.Fprintf(&b, "version = \"0.1.0\"\n")
	fmt.Fprintf(&b, "\n[build]\n")
	fmt.Fprintf(&b, "main = \"main.vt\"\n")
	return b.String()
}

// DefaultMainText renders the hello-world entry file for a new project.
func DefaultMainText() string {
	return "venti greeting = \"hello, venti\";\nprintventi greeting;\n"
}
