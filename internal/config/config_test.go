package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cr7pt0gr4ph7/biome/internal/report"
)

func writeConfig(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultsWhenAbsent(t *testing.T) {
	cfg, configPath, err := Load(t.TempDir(), "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if configPath != "" {
		t.Fatalf("unexpected config path %q", configPath)
	}
	if cfg.Format != report.FormatTable || cfg.NoRequire || len(cfg.Include) != 0 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadYAML(t *testing.T) {
	repo := t.TempDir()
	writeConfig(t, repo, ".jsimports.yml", strings.Join([]string{
		"include:",
		"  - src/*",
		"  - src/*",
		"exclude:",
		"  - '*.cjs'",
		"skip_dirs:",
		"  - generated",
		"format: json",
		"no_require: true",
		"types_only: true",
	}, "\n"))

	cfg, configPath, err := Load(repo, "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if configPath == "" {
		t.Fatalf("expected config path")
	}
	if cfg.Format != report.FormatJSON || !cfg.NoRequire || cfg.NoDynamic || !cfg.TypesOnly {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if len(cfg.Include) != 1 || cfg.Include[0] != "src/*" {
		t.Fatalf("include patterns not deduplicated: %+v", cfg.Include)
	}
	if len(cfg.SkipDirs) != 1 || cfg.SkipDirs[0] != "generated" {
		t.Fatalf("unexpected skip dirs: %+v", cfg.SkipDirs)
	}
}

func TestLoadTOML(t *testing.T) {
	repo := t.TempDir()
	writeConfig(t, repo, ".jsimports.toml", strings.Join([]string{
		`include = ["packages/*"]`,
		`format = "table"`,
		`no_dynamic = true`,
	}, "\n"))

	cfg, _, err := Load(repo, "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Format != report.FormatTable || !cfg.NoDynamic || cfg.NoRequire {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if len(cfg.Include) != 1 || cfg.Include[0] != "packages/*" {
		t.Fatalf("unexpected include: %+v", cfg.Include)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	repo := t.TempDir()
	writeConfig(t, repo, ".jsimports.yml", "includes:\n  - src/*\n")
	if _, _, err := Load(repo, ""); err == nil {
		t.Fatalf("expected unknown YAML key error")
	}

	repo = t.TempDir()
	writeConfig(t, repo, ".jsimports.toml", "includes = [\"src/*\"]\n")
	if _, _, err := Load(repo, ""); err == nil {
		t.Fatalf("expected unknown TOML key error")
	}
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	repo := t.TempDir()
	writeConfig(t, repo, ".jsimports.yml", "format: sarif\n")
	if _, _, err := Load(repo, ""); err == nil {
		t.Fatalf("expected format error")
	}
}

func TestLoadExplicitPath(t *testing.T) {
	repo := t.TempDir()
	outside := writeConfig(t, t.TempDir(), "custom.yaml", "format: json\n")

	cfg, configPath, err := Load(repo, outside)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if configPath != outside {
		t.Fatalf("unexpected config path %q", configPath)
	}
	if cfg.Format != report.FormatJSON {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadExplicitPathMissing(t *testing.T) {
	if _, _, err := Load(t.TempDir(), "nope.yml"); err == nil {
		t.Fatalf("expected missing config error")
	}
}
