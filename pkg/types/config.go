// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Defaults applied when an answer is missing or malformed.
const (
	DefaultRateLimitRPS    = 10
	DefaultRobotsUserAgent = "*"
	DefaultRole            = "Developer"

	// LastUpdateLayout is the time layout for humans.txt dates (YYYY/MM/DD).
	LastUpdateLayout = "2006/01/02"
)

// GeneratorConfig holds the settings of one CLI generation run.
type GeneratorConfig struct {
	// OutDir is the site root documents are written under.
	OutDir string `json:"out_dir" yaml:"out_dir"`

	// Formats is the set of documents to produce.
	Formats FormatSet `json:"formats" yaml:"formats"`

	// DryRun prints documents instead of writing them.
	DryRun bool `json:"dry_run" yaml:"dry_run"`

	// Interactive enables prompting for answers.
	Interactive bool `json:"interactive" yaml:"interactive"`

	// LedgerPath is the SQLite ledger location; empty disables the ledger.
	LedgerPath string `json:"ledger_path,omitempty" yaml:"ledger_path,omitempty"`

	// AnswersPath, when set, receives the final answers as YAML.
	AnswersPath string `json:"answers_path,omitempty" yaml:"answers_path,omitempty"`
}
