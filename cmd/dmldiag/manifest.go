package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"dmldiag/internal/diag"
)

// dmldiag.toml supplies export defaults so CI invocations stay short.
// Flags always override the manifest.

type manifest struct {
	Path   string
	Root   string
	Config manifestConfig
}

type manifestConfig struct {
	Export  exportConfig  `toml:"export"`
	Context contextConfig `toml:"context"`
}

type exportConfig struct {
	Format string `toml:"format"`
	Output string `toml:"output"`
	Jobs   int    `toml:"jobs"`
}

type contextConfig struct {
	InputFile  string `toml:"input_file"`
	DMLVersion string `toml:"dml_version"`
}

func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "dmldiag.toml")
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

// loadManifest discovers and parses dmldiag.toml upward from startDir.
// A missing manifest is not an error; ok reports whether one was found.
func loadManifest(startDir string) (*manifest, bool, error) {
	path, ok, err := findManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}

	var cfg manifestConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if cfg.Export.Format != "" {
		switch cfg.Export.Format {
		case "json", "msgpack", "pretty":
		default:
			return nil, true, fmt.Errorf("%s: unknown [export].format %q", path, cfg.Export.Format)
		}
	}
	if cfg.Context.DMLVersion != "" {
		if _, err := diag.ParseVersion(cfg.Context.DMLVersion); err != nil {
			return nil, true, fmt.Errorf("%s: invalid [context].dml_version: %w", path, err)
		}
	}
	if cfg.Export.Jobs < 0 {
		return nil, true, fmt.Errorf("%s: [export].jobs must not be negative", path)
	}

	return &manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, true, nil
}
