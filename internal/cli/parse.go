package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/cr7pt0gr4ph7/biome/internal/app"
	"github.com/cr7pt0gr4ph7/biome/internal/config"
	"github.com/cr7pt0gr4ph7/biome/internal/report"
)

var ErrHelpRequested = errors.New("help requested")

func ParseArgs(args []string) (app.Request, error) {
	req := app.DefaultRequest()
	if len(args) == 0 {
		return req, ErrHelpRequested
	}

	if isHelpArg(args[0]) {
		return req, ErrHelpRequested
	}

	switch args[0] {
	case "scan":
		return parseScan(args[1:], req)
	default:
		return req, fmt.Errorf("unknown command: %s", args[0])
	}
}

func parseScan(args []string, req app.Request) (app.Request, error) {
	fs := flag.NewFlagSet("scan", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	repoPath := fs.String("repo", req.RepoPath, "repository path")
	formatFlag := fs.String("format", string(req.Scan.Format), "output format")
	configPath := fs.String("config", req.Scan.ConfigPath, "config file path")
	includeFlag := fs.String("include", "", "comma-separated include globs")
	excludeFlag := fs.String("exclude", "", "comma-separated exclude globs")
	skipDirsFlag := fs.String("skip-dirs", "", "comma-separated directory names to skip")
	noRequire := fs.Bool("no-require", false, "skip require() calls")
	noDynamic := fs.Bool("no-dynamic", false, "skip dynamic import() calls")
	typesOnly := fs.Bool("types-only", false, "report only type-only imports")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return req, ErrHelpRequested
		}
		return req, err
	}
	if fs.NArg() > 0 {
		return req, fmt.Errorf("unexpected arguments for scan: %s", strings.Join(fs.Args(), " "))
	}

	visited := visitedFlags(fs)

	cfg, resolvedConfigPath, err := config.Load(strings.TrimSpace(*repoPath), strings.TrimSpace(*configPath))
	if err != nil {
		return req, err
	}

	scanReq := app.ScanRequest{
		Format:     cfg.Format,
		ConfigPath: resolvedConfigPath,
		Include:    cfg.Include,
		Exclude:    cfg.Exclude,
		SkipDirs:   cfg.SkipDirs,
		NoRequire:  cfg.NoRequire,
		NoDynamic:  cfg.NoDynamic,
		TypesOnly:  cfg.TypesOnly,
	}

	if visited["format"] {
		format, err := report.ParseFormat(*formatFlag)
		if err != nil {
			return req, err
		}
		scanReq.Format = format
	}
	if visited["include"] {
		scanReq.Include = splitList(*includeFlag)
	}
	if visited["exclude"] {
		scanReq.Exclude = splitList(*excludeFlag)
	}
	if visited["skip-dirs"] {
		scanReq.SkipDirs = splitList(*skipDirsFlag)
	}
	if visited["no-require"] {
		scanReq.NoRequire = *noRequire
	}
	if visited["no-dynamic"] {
		scanReq.NoDynamic = *noDynamic
	}
	if visited["types-only"] {
		scanReq.TypesOnly = *typesOnly
	}

	req.Mode = app.ModeScan
	req.RepoPath = strings.TrimSpace(*repoPath)
	req.Scan = scanReq

	return req, nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	cleaned := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			cleaned = append(cleaned, part)
		}
	}
	if len(cleaned) == 0 {
		return nil
	}
	return cleaned
}

func visitedFlags(fs *flag.FlagSet) map[string]bool {
	visited := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		visited[f.Name] = true
	})
	return visited
}
