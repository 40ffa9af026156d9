// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relevance

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/jcvillada/givelit/pkg/types"
)

// entry pairs a scored article with its input position, which serves as
// the final tiebreak so selection is fully deterministic.
type entry struct {
	art types.ScoredArticle
	idx int
}

// Select orders scored articles and produces the final bounded report.
// Articles are grouped per journal, each group is sorted by the chosen
// mode, and groups are visited round-robin in request order so every
// requested journal is represented before raw ranking takes over. Slots
// left over once the round-robin exhausts are backfilled from the
// remaining pool, sorted globally by the same mode. Duplicate articles
// (same DOI, or same normalized title when the DOI is absent) are
// collapsed, first occurrence wins.
//
// requestedJournals must already be concrete display names; sentinel
// expansion is the caller's job. Ranks in the result are 1-based.
func Select(scored []types.ScoredArticle, requestedJournals []string, mode types.SortMode, limit int) ([]types.SelectedArticle, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be at least 1, got %d", ErrValidation, limit)
	}
	if len(requestedJournals) == 0 {
		return nil, fmt.Errorf("%w: no journals requested", ErrValidation)
	}
	less, err := comparator(mode)
	if err != nil {
		return nil, err
	}

	entries := dedupe(scored)

	// Partition by journal and order each group.
	groups := make(map[string][]entry)
	for _, e := range entries {
		key := strings.ToLower(e.art.Journal)
		groups[key] = append(groups[key], e)
	}
	for key := range groups {
		g := groups[key]
		sort.Slice(g, func(i, j int) bool { return less(g[i], g[j]) })
	}

	// Round-robin across requested journals in request order.
	var picked []entry
	cursors := make(map[string]int)
	for len(picked) < limit {
		progressed := false
		for _, name := range requestedJournals {
			key := strings.ToLower(name)
			g := groups[key]
			c := cursors[key]
			if c >= len(g) {
				continue
			}
			picked = append(picked, g[c])
			cursors[key] = c + 1
			progressed = true
			if len(picked) == limit {
				break
			}
		}
		if !progressed {
			break
		}
	}

	// Backfill remaining capacity from the unselected pool, globally
	// ordered by the same comparator.
	if len(picked) < limit {
		var pool []entry
		requested := make(map[string]bool, len(requestedJournals))
		for _, name := range requestedJournals {
			requested[strings.ToLower(name)] = true
		}
		for key, g := range groups {
			if requested[key] {
				pool = append(pool, g[cursors[key]:]...)
			} else {
				pool = append(pool, g...)
			}
		}
		sort.Slice(pool, func(i, j int) bool { return less(pool[i], pool[j]) })
		for _, e := range pool {
			if len(picked) == limit {
				break
			}
			picked = append(picked, e)
		}
	}

	result := make([]types.SelectedArticle, len(picked))
	for i, e := range picked {
		result[i] = types.SelectedArticle{ScoredArticle: e.art, Rank: i + 1}
	}
	return result, nil
}

// comparator returns the ordering for the given sort mode. Every mode's
// ordering is total: ties fall through to the input position.
func comparator(mode types.SortMode) (func(a, b entry) bool, error) {
	switch mode {
	case types.SortScore, "":
		return func(a, b entry) bool {
			if a.art.Score != b.art.Score {
				return a.art.Score > b.art.Score
			}
			if c := compareDays(a.art.DaysAgo, b.art.DaysAgo); c != 0 {
				return c < 0
			}
			return a.idx < b.idx
		}, nil
	case types.SortRecency:
		return func(a, b entry) bool {
			if c := compareDays(a.art.DaysAgo, b.art.DaysAgo); c != 0 {
				return c < 0
			}
			if a.art.Score != b.art.Score {
				return a.art.Score > b.art.Score
			}
			return a.idx < b.idx
		}, nil
	case types.SortJournal:
		return func(a, b entry) bool {
			ja, jb := strings.ToLower(a.art.Journal), strings.ToLower(b.art.Journal)
			if ja != jb {
				return ja < jb
			}
			if a.art.Score != b.art.Score {
				return a.art.Score > b.art.Score
			}
			return a.idx < b.idx
		}, nil
	default:
		return nil, fmt.Errorf("%w: unrecognized sort mode %q", ErrConfiguration, mode)
	}
}

// compareDays orders known ages ascending (fresher first) and sorts
// unknown ages after every known one.
func compareDays(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	default:
		return 0
	}
}

// dedupe collapses articles that share a DOI or, failing that, a
// normalized title. First occurrence wins.
func dedupe(scored []types.ScoredArticle) []entry {
	seen := make(map[string]bool)
	var entries []entry
	for i, a := range scored {
		key := "doi:" + strings.ToLower(a.DOI)
		if a.DOI == "" {
			key = "title:" + normalizeTitle(a.Title)
		}
		// Articles with neither DOI nor title have no usable identity.
		if key != "title:" {
			if seen[key] {
				continue
			}
			seen[key] = true
		}
		entries = append(entries, entry{art: a, idx: i})
	}
	return entries
}

// normalizeTitle returns a lowercased, punctuation-stripped version of
// the title for identity comparison.
func normalizeTitle(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
