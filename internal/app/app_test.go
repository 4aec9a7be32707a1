package app

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cr7pt0gr4ph7/biome/internal/report"
)

func fixtureRepo(t *testing.T) string {
	t.Helper()
	repo := t.TempDir()
	source := strings.Join([]string{
		`import React from "react"`,
		`const fs = require("fs")`,
		``,
	}, "\n")
	if err := os.WriteFile(filepath.Join(repo, "index.js"), []byte(source), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return repo
}

func scanRequest(repo string, format report.Format) Request {
	req := DefaultRequest()
	req.Mode = ModeScan
	req.RepoPath = repo
	req.Scan.Format = format
	return req
}

func TestExecuteUnknownMode(t *testing.T) {
	if _, err := New().Execute(context.Background(), DefaultRequest()); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected unknown mode error, got %v", err)
	}
}

func TestExecuteScanTable(t *testing.T) {
	output, err := New().Execute(context.Background(), scanRequest(fixtureRepo(t), report.FormatTable))
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"react", "require", "index.js"} {
		if !strings.Contains(output, want) {
			t.Fatalf("table output missing %q:\n%s", want, output)
		}
	}
}

func TestExecuteScanJSON(t *testing.T) {
	output, err := New().Execute(context.Background(), scanRequest(fixtureRepo(t), report.FormatJSON))
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	var decoded report.Report
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Summary.RecordCount != 2 || decoded.Summary.RequireCount != 1 {
		t.Fatalf("unexpected summary: %+v", decoded.Summary)
	}
}

func TestExecuteScanError(t *testing.T) {
	req := scanRequest("", report.FormatTable)
	if _, err := New().Execute(context.Background(), req); err == nil {
		t.Fatalf("expected scan error for empty repo path")
	}
}
