// Package scan walks a repository, parses every supported JS/TS file, and
// extracts one record per import-like construct through the typed syntax
// tree accessors.
package scan

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/cr7pt0gr4ph7/biome/internal/jsparse"
	"github.com/cr7pt0gr4ph7/biome/internal/report"
	"github.com/cr7pt0gr4ph7/biome/internal/safeio"
)

// Options narrows which files are visited and which import forms are
// collected.
type Options struct {
	Include   []string
	Exclude   []string
	SkipDirs  []string
	NoRequire bool
	NoDynamic bool
	TypesOnly bool
}

// Result pairs the per-file records with non-fatal warnings gathered during
// the walk.
type Result struct {
	Files    []report.FileReport
	Warnings []string
}

var skipDirectories = map[string]bool{
	".git":         true,
	"node_modules": true,
	"dist":         true,
	"build":        true,
	"out":          true,
	"coverage":     true,
	"vendor":       true,
	".next":        true,
	".turbo":       true,
}

type scanRepoState struct {
	parser          *jsparse.Parser
	repoPath        string
	options         Options
	skipDirs        map[string]bool
	result          *Result
	parseErrorCount int
	parseErrorFiles []string
}

// ScanRepo walks repoPath and collects import records from every supported
// file. Parse errors are reported as warnings, not failures; only I/O and
// context errors abort the walk.
func ScanRepo(ctx context.Context, repoPath string, options Options) (Result, error) {
	result := Result{}
	if repoPath == "" {
		return result, errors.New("repo path is empty")
	}

	state := scanRepoState{
		parser:   jsparse.NewParser(),
		repoPath: repoPath,
		options:  options,
		skipDirs: mergeSkipDirs(options.SkipDirs),
		result:   &result,
	}

	err := filepath.WalkDir(repoPath, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return scanRepoEntry(ctx, &state, path, entry)
	})

	if err != nil {
		return result, err
	}

	if len(result.Files) == 0 {
		result.Warnings = append(result.Warnings, "no JS/TS files found to scan")
	}

	if state.parseErrorCount > 0 {
		warning := fmt.Sprintf("parse errors in %d file(s)", state.parseErrorCount)
		if len(state.parseErrorFiles) > 0 {
			warning = fmt.Sprintf("%s: %s", warning, strings.Join(state.parseErrorFiles, ", "))
		}
		result.Warnings = append(result.Warnings, warning)
	}

	return result, nil
}

func scanRepoEntry(ctx context.Context, state *scanRepoState, path string, entry fs.DirEntry) error {
	if entry.IsDir() {
		if path != state.repoPath && state.skipDirs[entry.Name()] {
			return fs.SkipDir
		}
		return nil
	}
	if !jsparse.IsSupportedFile(path) {
		return nil
	}

	relPath, err := relativePath(state.repoPath, path)
	if err != nil {
		return err
	}
	if !selectedByPatterns(relPath, state.options) {
		return nil
	}

	content, err := safeio.ReadFileUnder(state.repoPath, path)
	if err != nil {
		return err
	}

	parsed, err := state.parser.Parse(ctx, path, content)
	if err != nil {
		return err
	}
	if parsed.HasError {
		state.parseErrorCount++
		appendParseErrorFile(&state.parseErrorFiles, relPath)
	}

	state.result.Files = append(state.result.Files, report.FileReport{
		Path:    relPath,
		Records: collectRecords(parsed.Root, relPath, state.options),
	})
	return nil
}

func relativePath(repoPath string, path string) (string, error) {
	relPath, err := filepath.Rel(repoPath, path)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(relPath), nil
}

// selectedByPatterns applies include then exclude globs. Patterns match
// either the full slash-separated relative path or its base name.
func selectedByPatterns(relPath string, options Options) bool {
	if len(options.Include) > 0 && !matchesAny(relPath, options.Include) {
		return false
	}
	return !matchesAny(relPath, options.Exclude)
}

func matchesAny(relPath string, patterns []string) bool {
	base := filepath.Base(relPath)
	for _, pattern := range patterns {
		if matched, err := filepath.Match(pattern, relPath); err == nil && matched {
			return true
		}
		if matched, err := filepath.Match(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}

func mergeSkipDirs(extra []string) map[string]bool {
	merged := make(map[string]bool, len(skipDirectories)+len(extra))
	for name := range skipDirectories {
		merged[name] = true
	}
	for _, name := range extra {
		if name = strings.TrimSpace(name); name != "" {
			merged[name] = true
		}
	}
	return merged
}

func appendParseErrorFile(parseErrorFiles *[]string, relPath string) {
	if len(*parseErrorFiles) < 5 {
		*parseErrorFiles = append(*parseErrorFiles, relPath)
	}
}
