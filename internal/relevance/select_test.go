// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relevance

import (
	"errors"
	"testing"

	"github.com/jcvillada/givelit/pkg/types"
)

// scoredArticle builds a minimal scored article for selection tests.
// days < 0 means the publication date is unknown.
func scoredArticle(journal, title, doi string, score float64, days int) types.ScoredArticle {
	s := types.ScoredArticle{
		Article: types.Article{Journal: journal, Title: title, DOI: doi},
		Score:   score,
	}
	if days >= 0 {
		s.DaysAgo = intPtr(days)
	}
	return s
}

func titles(selected []types.SelectedArticle) []string {
	out := make([]string, len(selected))
	for i, s := range selected {
		out[i] = s.Title
	}
	return out
}

func assertTitles(t *testing.T, selected []types.SelectedArticle, want []string) {
	t.Helper()
	got := titles(selected)
	if len(got) != len(want) {
		t.Fatalf("titles = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("titles = %v, want %v", got, want)
		}
	}
}

func TestSelectValidation(t *testing.T) {
	scored := []types.ScoredArticle{scoredArticle("Science", "A", "10.1/a", 1, 1)}

	tests := []struct {
		name     string
		journals []string
		mode     types.SortMode
		limit    int
		wantErr  error
	}{
		{"zero limit", []string{"Science"}, types.SortScore, 0, ErrValidation},
		{"negative limit", []string{"Science"}, types.SortScore, -3, ErrValidation},
		{"empty journals", nil, types.SortScore, 5, ErrValidation},
		{"unknown sort mode", []string{"Science"}, "citations", 5, ErrConfiguration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Select(scored, tt.journals, tt.mode, tt.limit)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Select() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSelectJournalDiversity(t *testing.T) {
	// Three journals with two candidates each and limit 3: exactly one
	// article per journal, taken in request order, no backfill.
	scored := []types.ScoredArticle{
		scoredArticle("Science", "S1", "10.1/s1", 50, 1),
		scoredArticle("Science", "S2", "10.1/s2", 40, 2),
		scoredArticle("Cell Systems", "C1", "10.1/c1", 90, 1),
		scoredArticle("Cell Systems", "C2", "10.1/c2", 80, 2),
		scoredArticle("Nature Microbiology", "N1", "10.1/n1", 70, 1),
		scoredArticle("Nature Microbiology", "N2", "10.1/n2", 60, 2),
	}

	selected, err := Select(scored, []string{"Nature Microbiology", "Science", "Cell Systems"}, types.SortScore, 3)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	assertTitles(t, selected, []string{"N1", "S1", "C1"})
	for i, row := range selected {
		if row.Rank != i+1 {
			t.Errorf("rank[%d] = %d, want %d", i, row.Rank, i+1)
		}
	}
}

func TestSelectBackfill(t *testing.T) {
	// One sparse journal (1 article) and one rich journal (5): limit 4
	// keeps the sparse article plus the rich journal's top three.
	scored := []types.ScoredArticle{
		scoredArticle("Science", "S1", "10.1/s1", 10, 1),
		scoredArticle("Cell Systems", "C1", "10.1/c1", 90, 1),
		scoredArticle("Cell Systems", "C2", "10.1/c2", 80, 2),
		scoredArticle("Cell Systems", "C3", "10.1/c3", 70, 3),
		scoredArticle("Cell Systems", "C4", "10.1/c4", 60, 4),
		scoredArticle("Cell Systems", "C5", "10.1/c5", 50, 5),
	}

	selected, err := Select(scored, []string{"Science", "Cell Systems"}, types.SortScore, 4)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	assertTitles(t, selected, []string{"S1", "C1", "C2", "C3"})
}

func TestSelectBackfillFromPool(t *testing.T) {
	// When round-robin exhausts every requested journal below the limit,
	// the pool (including unrequested journals) fills the rest by score.
	scored := []types.ScoredArticle{
		scoredArticle("Science", "S1", "10.1/s1", 10, 1),
		scoredArticle("Nature Microbiology", "N1", "10.1/n1", 95, 1),
		scoredArticle("Nature Microbiology", "N2", "10.1/n2", 85, 2),
	}

	selected, err := Select(scored, []string{"Science"}, types.SortScore, 3)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	assertTitles(t, selected, []string{"S1", "N1", "N2"})
}

func TestSelectScoreModeTieBreaks(t *testing.T) {
	// Equal scores: fresher article wins; unknown age sorts last; input
	// order settles the rest.
	scored := []types.ScoredArticle{
		scoredArticle("Science", "unknown-age", "10.1/u", 50, -1),
		scoredArticle("Science", "older", "10.1/o", 50, 9),
		scoredArticle("Science", "fresher", "10.1/f", 50, 2),
	}

	selected, err := Select(scored, []string{"Science"}, types.SortScore, 3)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	assertTitles(t, selected, []string{"fresher", "older", "unknown-age"})
}

func TestSelectRecencyModeNilDaysLast(t *testing.T) {
	// Under recency sort an undated article ranks after every dated one,
	// regardless of score.
	scored := []types.ScoredArticle{
		scoredArticle("Science", "undated-high-score", "10.1/u", 99, -1),
		scoredArticle("Science", "old", "10.1/o", 10, 20),
		scoredArticle("Science", "fresh", "10.1/f", 5, 1),
	}

	selected, err := Select(scored, []string{"Science"}, types.SortRecency, 3)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	assertTitles(t, selected, []string{"fresh", "old", "undated-high-score"})
}

func TestSelectJournalMode(t *testing.T) {
	scored := []types.ScoredArticle{
		scoredArticle("science", "S-low", "10.1/sl", 10, 1),
		scoredArticle("science", "S-high", "10.1/sh", 90, 1),
		scoredArticle("Cell Systems", "C1", "10.1/c1", 50, 1),
	}

	// limit == total so the backfill path is not involved; with a single
	// round-robin pass per journal the group comparator governs order.
	selected, err := Select(scored, []string{"Cell Systems", "science"}, types.SortJournal, 3)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	assertTitles(t, selected, []string{"C1", "S-high", "S-low"})
}

func TestSelectNeverExceedsLimit(t *testing.T) {
	var scored []types.ScoredArticle
	for i := 0; i < 20; i++ {
		scored = append(scored, scoredArticle("Science", string(rune('a'+i)), "", float64(i), i))
	}

	selected, err := Select(scored, []string{"Science"}, types.SortScore, 7)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if len(selected) != 7 {
		t.Errorf("len(selected) = %d, want 7", len(selected))
	}
}

func TestSelectDedupeByDOI(t *testing.T) {
	scored := []types.ScoredArticle{
		scoredArticle("Science", "Original", "10.1/dup", 80, 1),
		scoredArticle("Science", "Duplicate listing", "10.1/dup", 70, 2),
		scoredArticle("Science", "Other", "10.1/other", 60, 3),
	}

	selected, err := Select(scored, []string{"Science"}, types.SortScore, 10)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	assertTitles(t, selected, []string{"Original", "Other"})
}

func TestSelectDedupeByTitle(t *testing.T) {
	scored := []types.ScoredArticle{
		scoredArticle("Science", "Attention Is All You Need", "", 80, 1),
		scoredArticle("Science", "attention is all you need!", "", 70, 2),
	}

	selected, err := Select(scored, []string{"Science"}, types.SortScore, 10)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if len(selected) != 1 {
		t.Fatalf("len(selected) = %d, want 1 after title dedup", len(selected))
	}
	if selected[0].Title != "Attention Is All You Need" {
		t.Errorf("kept %q, want first occurrence", selected[0].Title)
	}
}

func TestSelectRoundRobinRequestOrder(t *testing.T) {
	// The interleave visits journals in the order the caller requested,
	// not alphabetically and not by score.
	scored := []types.ScoredArticle{
		scoredArticle("Alpha", "A1", "10.1/a1", 99, 1),
		scoredArticle("Beta", "B1", "10.1/b1", 1, 1),
	}

	selected, err := Select(scored, []string{"Beta", "Alpha"}, types.SortScore, 2)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	assertTitles(t, selected, []string{"B1", "A1"})
}

func TestSelectDeterminism(t *testing.T) {
	scored := []types.ScoredArticle{
		scoredArticle("Science", "tie-a", "10.1/a", 50, -1),
		scoredArticle("Science", "tie-b", "10.1/b", 50, -1),
		scoredArticle("Science", "tie-c", "10.1/c", 50, -1),
	}

	first, err := Select(scored, []string{"Science"}, types.SortScore, 3)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Select(scored, []string{"Science"}, types.SortScore, 3)
		if err != nil {
			t.Fatalf("Select() error = %v", err)
		}
		assertTitles(t, again, titles(first))
	}
	// Full ties resolve by input order.
	assertTitles(t, first, []string{"tie-a", "tie-b", "tie-c"})
}
