package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "givelit/0.1 (+https://github.com/jcvillada/givelit)").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the Crossref fetch stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Mailto is an email address sent as the mailto parameter for
	// Crossref polite-pool access. Optional.
	Mailto string `json:"mailto,omitempty" yaml:"mailto,omitempty"`

	// MaxRetries is the number of retries on HTTP 429 (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// SortMode selects the ordering used by the Selector.
type SortMode string

const (
	SortScore   SortMode = "score"
	SortRecency SortMode = "recency"
	SortJournal SortMode = "journal"
)

// RankConfig holds settings for the scoring and selection stage.
type RankConfig struct {
	// Keywords rank relevance; at least one is required.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// Days restricts results to articles published within the last N
	// days. Zero disables the date filter but not the recency bonus.
	Days int `json:"days" yaml:"days"`

	// Limit is the maximum number of articles in the final report.
	Limit int `json:"limit" yaml:"limit"`

	// Sort selects the ordering: score, recency, or journal.
	Sort SortMode `json:"sort" yaml:"sort"`
}

// ReportFormat selects the report renderer.
type ReportFormat string

const (
	FormatCLI  ReportFormat = "cli"
	FormatWeb  ReportFormat = "web"
	FormatJSON ReportFormat = "json"
	FormatCSL  ReportFormat = "csl"
)

// ReportConfig holds settings for the reporting stage.
type ReportConfig struct {
	// Format selects the renderer: cli, web, json, or csl.
	Format ReportFormat `json:"format" yaml:"format"`

	// Output is the destination path for the HTML report when Format is web.
	Output string `json:"output" yaml:"output"`
}

// RadarConfig groups all stage configurations for a radar run.
type RadarConfig struct {
	Fetch  FetchConfig  `json:"fetch" yaml:"fetch"`
	Rank   RankConfig   `json:"rank" yaml:"rank"`
	Report ReportConfig `json:"report" yaml:"report"`
}
