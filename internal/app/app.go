// Package app executes resolved requests: it runs the repository scan and
// renders the result in the requested format.
package app

import (
	"context"
	"errors"

	"github.com/cr7pt0gr4ph7/biome/internal/report"
	"github.com/cr7pt0gr4ph7/biome/internal/scan"
)

var ErrUnknownMode = errors.New("unknown mode")

type App struct {
	Formatter report.Formatter
}

func New() *App {
	return &App{Formatter: report.NewFormatter()}
}

func (a *App) Execute(ctx context.Context, req Request) (string, error) {
	switch req.Mode {
	case ModeScan:
		return a.executeScan(ctx, req)
	default:
		return "", ErrUnknownMode
	}
}

func (a *App) executeScan(ctx context.Context, req Request) (string, error) {
	result, err := scan.ScanRepo(ctx, req.RepoPath, scan.Options{
		Include:   req.Scan.Include,
		Exclude:   req.Scan.Exclude,
		SkipDirs:  req.Scan.SkipDirs,
		NoRequire: req.Scan.NoRequire,
		NoDynamic: req.Scan.NoDynamic,
		TypesOnly: req.Scan.TypesOnly,
	})
	if err != nil {
		return "", err
	}

	return a.Formatter.Format(report.New(req.RepoPath, result.Files, result.Warnings), req.Scan.Format)
}
