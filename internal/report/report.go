package report

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

const SchemaVersion = "0.1.0"

var ErrUnknownFormat = errors.New("unknown format")

func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(FormatTable):
		return FormatTable, nil
	case string(FormatJSON):
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, value)
	}
}

// Form is the syntactic shape an import record came from.
type Form string

const (
	FormStatic  Form = "static"
	FormRequire Form = "require"
	FormDynamic Form = "dynamic"
	FormAmbient Form = "ambient"
)

type Location struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// Record is one resolved module reference.
type Record struct {
	Form      Form     `json:"form"`
	Module    string   `json:"module"`
	Raw       string   `json:"raw"`
	TypeOnly  bool     `json:"typeOnly,omitempty"`
	Assertion string   `json:"assertion,omitempty"`
	Locals    []string `json:"locals,omitempty"`
	Location  Location `json:"location"`
}

type FileReport struct {
	Path    string   `json:"path"`
	Records []Record `json:"records"`
}

type Summary struct {
	FileCount    int `json:"fileCount"`
	RecordCount  int `json:"recordCount"`
	StaticCount  int `json:"staticCount"`
	RequireCount int `json:"requireCount"`
	DynamicCount int `json:"dynamicCount"`
	AmbientCount int `json:"ambientCount"`
	TypeOnly     int `json:"typeOnlyCount"`
}

type Report struct {
	SchemaVersion string       `json:"schemaVersion"`
	GeneratedAt   time.Time    `json:"generatedAt"`
	RepoPath      string       `json:"repoPath"`
	Files         []FileReport `json:"files"`
	Summary       Summary      `json:"summary"`
	Warnings      []string     `json:"warnings,omitempty"`
}

func New(repoPath string, files []FileReport, warnings []string) Report {
	summary := Summary{FileCount: len(files)}
	for _, file := range files {
		for _, record := range file.Records {
			summary.RecordCount++
			switch record.Form {
			case FormStatic:
				summary.StaticCount++
			case FormRequire:
				summary.RequireCount++
			case FormDynamic:
				summary.DynamicCount++
			case FormAmbient:
				summary.AmbientCount++
			}
			if record.TypeOnly {
				summary.TypeOnly++
			}
		}
	}

	return Report{
		SchemaVersion: SchemaVersion,
		GeneratedAt:   time.Now().UTC(),
		RepoPath:      repoPath,
		Files:         files,
		Summary:       summary,
		Warnings:      warnings,
	}
}
