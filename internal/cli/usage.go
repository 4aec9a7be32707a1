package cli

const usage = `Usage:
  jsimports scan [--repo PATH] [--format table|json] [--config PATH]
                 [--include GLOBS] [--exclude GLOBS] [--skip-dirs NAMES]
                 [--no-require] [--no-dynamic] [--types-only]

Options:
  --repo PATH           Repository path (default: .)
  --format table|json   Output format (default: table)
  --config PATH         Config file path (default: .jsimports.yml|.yaml|.toml)
  --include GLOBS       Comma-separated path globs to include
  --exclude GLOBS       Comma-separated path globs to exclude
  --skip-dirs NAMES     Comma-separated directory names to skip
  --no-require          Skip require() calls
  --no-dynamic          Skip dynamic import() calls
  --types-only          Report only type-only imports
  -h, --help            Show this help text
`

func Usage() string {
	return usage
}
