// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the givelit pipeline.
package types

import "time"

// JournalConfig represents a search target that can be translated into a
// Crossref query.
type JournalConfig struct {
	// Key is the kebab-case identifier used on the command line
	// (e.g. "nature-microbiology").
	Key string `json:"key" yaml:"key"`

	// Name is the display name used in reports.
	Name string `json:"name" yaml:"name"`

	// ContainerTitle is the journal title as Crossref knows it, used in
	// the container-title filter.
	ContainerTitle string `json:"container_title" yaml:"container_title"`
}

// Article is the normalized representation of a work returned by the
// bibliographic service. Absent text fields are empty strings, never
// meaningful sentinels; absent date and relevance are nil.
type Article struct {
	// Journal is the resolved display name of the containing journal.
	Journal string `json:"journal" yaml:"journal"`

	// Title is the article title as returned by the source.
	Title string `json:"title" yaml:"title"`

	// URL is the landing page for the article (usually a doi.org link).
	URL string `json:"url" yaml:"url"`

	// DOI is the bare DOI (no https://doi.org/ prefix) when the source
	// provided one.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// Authors lists the article authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Abstract is the flattened plain-text abstract, empty when the
	// source carries none.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// Published is the publication date, nil when unknown.
	Published *time.Time `json:"published,omitempty" yaml:"published,omitempty"`

	// SourceRelevance is the service-provided relevance score, nil when
	// the source did not report one. Scoring treats nil as zero.
	SourceRelevance *float64 `json:"source_relevance,omitempty" yaml:"source_relevance,omitempty"`
}

// FormattedDate returns the publication date as YYYY-MM-DD, or "Unknown"
// when the date is absent.
func (a Article) FormattedDate() string {
	if a.Published == nil {
		return "Unknown"
	}
	return a.Published.Format("2006-01-02")
}

// ScoredArticle wraps an Article with its composite relevance score and
// the article age used for display and tie-breaking.
type ScoredArticle struct {
	Article `yaml:",inline"`

	// Score is the composite relevance score, rounded to two decimals.
	Score float64 `json:"score" yaml:"score"`

	// DaysAgo is the non-negative whole number of days between
	// publication and the scoring clock. Nil iff Published is nil.
	DaysAgo *int `json:"days_ago,omitempty" yaml:"days_ago,omitempty"`
}

// SelectedArticle is one row of the final report: a scored article plus
// its 1-based position in the selection ordering. The renderer performs
// no further sorting.
type SelectedArticle struct {
	ScoredArticle `yaml:",inline"`

	// Rank is the 1-based position in the final ordering.
	Rank int `json:"rank" yaml:"rank"`
}
