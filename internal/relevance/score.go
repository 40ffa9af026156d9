// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package relevance scores normalized articles against a keyword set and
// selects a bounded, journal-diverse subset for reporting.
package relevance

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jcvillada/givelit/pkg/types"
)

// The two error kinds callers are expected to distinguish. Everything
// else about degenerate input data (missing abstract, missing date,
// missing source score) is normalized to neutral defaults, never an error.
var (
	// ErrValidation marks rejected caller input (bad limit, empty
	// journal list).
	ErrValidation = errors.New("invalid input")

	// ErrConfiguration marks rejected configuration (empty keyword set,
	// unrecognized sort mode).
	ErrConfiguration = errors.New("invalid configuration")
)

// minWindow is the floor applied to the freshness window so that small
// or zero --days values do not produce a degenerate recency signal.
const minWindow = 30

// Score computes the composite relevance score for one article:
//
//	score = 6*T + 2.5*B + 4*M + R/10 + 6*F + 4/(1+D)
//
// where T counts keyword occurrences in the title, B counts occurrences
// in title plus abstract, M counts distinct keywords matched anywhere,
// R is the source-provided relevance, D is the article age in days, and
// F decays linearly from 1 to 0 across the window max(requestedDays, 30).
// The two date-dependent terms are zero when the publication date is
// unknown, in which case the returned age is nil.
//
// Occurrences are counted case-insensitively and non-overlapping, and
// the result is rounded half-up (away from zero) to two decimals. The
// clock is an explicit parameter so scoring stays deterministic.
func Score(article types.Article, keywords []string, requestedDays int, now time.Time) (float64, *int, error) {
	cleaned := cleanKeywords(keywords)
	if len(cleaned) == 0 {
		return 0, nil, fmt.Errorf("%w: at least one keyword is required", ErrConfiguration)
	}

	title := strings.ToLower(article.Title)
	body := title + " " + strings.ToLower(article.Abstract)

	var titleHits, bodyHits, matched int
	for _, kw := range cleaned {
		hits := strings.Count(body, kw)
		titleHits += strings.Count(title, kw)
		bodyHits += hits
		if hits > 0 {
			matched++
		}
	}

	score := 6.0*float64(titleHits) + 2.5*float64(bodyHits) + 4.0*float64(matched)

	if article.SourceRelevance != nil {
		score += *article.SourceRelevance / 10.0
	}

	daysAgo := ageDays(article.Published, now)
	if daysAgo != nil {
		d := *daysAgo
		window := requestedDays
		if window < minWindow {
			window = minWindow
		}
		clamped := d
		if clamped > window {
			clamped = window
		}
		freshness := 1.0 - float64(clamped)/float64(window)
		score += 6.0*freshness + 4.0/float64(1+d)
	}

	return round2(score), daysAgo, nil
}

// ScoreAll scores a batch of articles, preserving input order.
func ScoreAll(articles []types.Article, keywords []string, requestedDays int, now time.Time) ([]types.ScoredArticle, error) {
	scored := make([]types.ScoredArticle, 0, len(articles))
	for _, a := range articles {
		s, days, err := Score(a, keywords, requestedDays, now)
		if err != nil {
			return nil, err
		}
		scored = append(scored, types.ScoredArticle{Article: a, Score: s, DaysAgo: days})
	}
	return scored, nil
}

// cleanKeywords lowercases, trims, and drops empty keywords.
func cleanKeywords(keywords []string) []string {
	var cleaned []string
	for _, kw := range keywords {
		if t := strings.ToLower(strings.TrimSpace(kw)); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	return cleaned
}

// ageDays returns the whole number of days between published and now,
// clamped to zero for future dates, or nil when the date is unknown.
func ageDays(published *time.Time, now time.Time) *int {
	if published == nil {
		return nil
	}
	days := int(now.Sub(*published).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return &days
}

// round2 rounds half away from zero to two decimal places.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
