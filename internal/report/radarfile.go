// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/jcvillada/givelit/pkg/types"
)

// RadarFile is the on-disk representation of a radar run and its
// selection. A run can be saved to a file and re-rendered later without
// re-querying Crossref.
type RadarFile struct {
	Query   RadarParams             `yaml:"query"`
	Results []types.SelectedArticle `yaml:"results"`
	Summary RadarSummary            `yaml:"summary"`
}

// RadarParams stores the run parameters in a serializable form.
type RadarParams struct {
	Keywords []string       `yaml:"keywords"`
	Journals []string       `yaml:"journals"`
	Days     int            `yaml:"days"`
	Limit    int            `yaml:"limit"`
	Sort     types.SortMode `yaml:"sort"`
}

// RadarSummary stores result statistics and a timestamp.
type RadarSummary struct {
	Total           int       `yaml:"total"`
	MissingJournals []string  `yaml:"missing_journals,omitempty"`
	FetchErrors     []string  `yaml:"fetch_errors,omitempty"`
	Timestamp       time.Time `yaml:"timestamp"`
}

// WriteRadarFile saves run parameters and the selection to a YAML file.
func WriteRadarFile(path string, params RadarParams, selected []types.SelectedArticle, missing, fetchErrors []string) error {
	rf := RadarFile{
		Query:   params,
		Results: selected,
		Summary: RadarSummary{
			Total:           len(selected),
			MissingJournals: missing,
			FetchErrors:     fetchErrors,
			Timestamp:       time.Now().UTC(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling radar file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadRadarFile loads a previously saved radar run from disk.
func ReadRadarFile(path string) (*RadarFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading radar file: %w", err)
	}
	var rf RadarFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing radar file: %w", err)
	}
	return &rf, nil
}
