// Package config loads the optional .jsimports repo configuration from YAML
// or TOML. Unknown keys are rejected so typos fail loudly.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/cr7pt0gr4ph7/biome/internal/report"
	"github.com/cr7pt0gr4ph7/biome/internal/safeio"
)

const (
	readConfigFileErrFmt = "read config file %s: %w"
	parseConfigErrFmt    = "parse config file %s: %w"
)

var configFileNames = []string{".jsimports.yml", ".jsimports.yaml", ".jsimports.toml"}

// Config is the merged repo configuration. The zero value is a valid
// "scan everything, table output" setup.
type Config struct {
	Include   []string
	Exclude   []string
	SkipDirs  []string
	Format    report.Format
	NoRequire bool
	NoDynamic bool
	TypesOnly bool
}

type rawConfig struct {
	Include   []string `yaml:"include" toml:"include"`
	Exclude   []string `yaml:"exclude" toml:"exclude"`
	SkipDirs  []string `yaml:"skip_dirs" toml:"skip_dirs"`
	Format    string   `yaml:"format" toml:"format"`
	NoRequire bool     `yaml:"no_require" toml:"no_require"`
	NoDynamic bool     `yaml:"no_dynamic" toml:"no_dynamic"`
	TypesOnly bool     `yaml:"types_only" toml:"types_only"`
}

// Load resolves and parses the repo configuration. An explicit path must
// exist; otherwise the well-known file names are probed in order and absence
// yields the zero config. The returned string is the path of the file that
// was read, empty when defaults applied.
func Load(repoPath, explicitPath string) (Config, string, error) {
	repoAbs, err := filepath.Abs(repoPath)
	if err != nil {
		return Config{}, "", fmt.Errorf("resolve repo path: %w", err)
	}
	explicitProvided := strings.TrimSpace(explicitPath) != ""

	configPath, found, err := resolveConfigPath(repoAbs, strings.TrimSpace(explicitPath))
	if err != nil {
		return Config{}, "", err
	}
	if !found {
		return Config{Format: report.FormatTable}, "", nil
	}

	data, err := readConfigFile(repoAbs, configPath, explicitProvided)
	if err != nil {
		return Config{}, "", fmt.Errorf(readConfigFileErrFmt, configPath, err)
	}

	raw, err := parseConfig(configPath, data)
	if err != nil {
		return Config{}, "", fmt.Errorf(parseConfigErrFmt, configPath, err)
	}

	cfg, err := raw.toConfig()
	if err != nil {
		return Config{}, "", fmt.Errorf(parseConfigErrFmt, configPath, err)
	}
	return cfg, configPath, nil
}

func resolveConfigPath(repoPath, explicitPath string) (string, bool, error) {
	if explicitPath != "" {
		candidate := explicitPath
		if !filepath.IsAbs(candidate) {
			candidate = filepath.Join(repoPath, candidate)
		}
		candidate = filepath.Clean(candidate)
		if _, err := os.Stat(candidate); err != nil {
			if os.IsNotExist(err) {
				return "", false, fmt.Errorf("config file not found: %s", candidate)
			}
			return "", false, fmt.Errorf(readConfigFileErrFmt, candidate, err)
		}
		return candidate, true, nil
	}

	for _, name := range configFileNames {
		candidate := filepath.Join(repoPath, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !os.IsNotExist(err) {
			return "", false, fmt.Errorf(readConfigFileErrFmt, candidate, err)
		}
	}

	return "", false, nil
}

// readConfigFile confines implicit reads to the repo; an explicit path may
// point outside it.
func readConfigFile(repoPath, path string, explicitProvided bool) ([]byte, error) {
	if !explicitProvided || isPathUnderRoot(repoPath, path) {
		return safeio.ReadFileUnder(repoPath, path)
	}
	return safeio.ReadFile(path)
}

func parseConfig(path string, data []byte) (rawConfig, error) {
	var raw rawConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		decoder := toml.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&raw); err != nil {
			return rawConfig{}, fmt.Errorf("invalid TOML config: %w", err)
		}
	default:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&raw); err != nil {
			return rawConfig{}, fmt.Errorf("invalid YAML config: %w", err)
		}
	}
	return raw, nil
}

func (c rawConfig) toConfig() (Config, error) {
	format, err := report.ParseFormat(c.Format)
	if err != nil {
		return Config{}, err
	}
	return Config{
		Include:   normalizePatterns(c.Include),
		Exclude:   normalizePatterns(c.Exclude),
		SkipDirs:  normalizePatterns(c.SkipDirs),
		Format:    format,
		NoRequire: c.NoRequire,
		NoDynamic: c.NoDynamic,
		TypesOnly: c.TypesOnly,
	}, nil
}

func normalizePatterns(patterns []string) []string {
	if len(patterns) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(patterns))
	normalized := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		trimmed := strings.TrimSpace(pattern)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		normalized = append(normalized, trimmed)
	}
	if len(normalized) == 0 {
		return nil
	}
	return normalized
}

func isPathUnderRoot(rootPath, targetPath string) bool {
	relative, err := filepath.Rel(rootPath, targetPath)
	if err != nil {
		return false
	}
	return relative != ".." && !strings.HasPrefix(relative, ".."+string(os.PathSeparator))
}
