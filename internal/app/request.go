package app

import "github.com/cr7pt0gr4ph7/biome/internal/report"

type Mode string

const ModeScan Mode = "scan"

// Request is a fully resolved invocation: config file values and CLI flags
// have already been merged by the time it reaches Execute.
type Request struct {
	Mode     Mode
	RepoPath string
	Scan     ScanRequest
}

type ScanRequest struct {
	Format     report.Format
	ConfigPath string
	Include    []string
	Exclude    []string
	SkipDirs   []string
	NoRequire  bool
	NoDynamic  bool
	TypesOnly  bool
}

func DefaultRequest() Request {
	return Request{
		RepoPath: ".",
		Scan: ScanRequest{
			Format: report.FormatTable,
		},
	}
}
