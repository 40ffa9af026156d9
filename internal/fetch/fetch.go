// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads recent works for configured journals from the
// Crossref API and normalizes them into Article records.
package fetch

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/jcvillada/givelit/pkg/types"
)

// Backend fetches candidate articles for a single journal. Crossref is
// the production implementation; tests substitute mocks.
type Backend interface {
	Name() string
	FetchJournal(ctx context.Context, journal types.JournalConfig, q Query, cfg types.FetchConfig) ([]types.Article, error)
}

// Query holds the fetch parameters shared by every journal request.
type Query struct {
	// Keywords are the search terms, joined into the service query.
	Keywords []string

	// Days restricts the request to works published within the last N
	// days; zero requests without a date filter.
	Days int

	// Limit is the requested report size; backends over-fetch relative
	// to it so ranking has candidates to choose from.
	Limit int
}

// IsEmpty reports whether the query contains no searchable terms.
func (q Query) IsEmpty() bool {
	for _, kw := range q.Keywords {
		if kw != "" {
			return false
		}
	}
	return true
}

// Output holds the combined fetch results and per-journal failures.
type Output struct {
	Articles []types.Article

	// JournalErrors records journals whose request failed, as
	// "name: error" strings. A failed journal never aborts the run.
	JournalErrors []string
}

// Collect fans the query out to all journals concurrently and combines
// the results. Per-journal failures are reported as warnings on w and
// collected in the output; only an empty query or an empty journal list
// is fatal.
func Collect(ctx context.Context, backend Backend, journals []types.JournalConfig, q Query, cfg types.FetchConfig, w io.Writer) (Output, error) {
	if q.IsEmpty() {
		return Output{}, fmt.Errorf("query is empty: provide at least one keyword")
	}
	if len(journals) == 0 {
		return Output{}, fmt.Errorf("no journals to fetch")
	}

	type journalResult struct {
		articles []types.Article
		err      error
		name     string
	}

	ch := make(chan journalResult, len(journals))
	var wg sync.WaitGroup

	for _, j := range journals {
		wg.Add(1)
		go func(j types.JournalConfig) {
			defer wg.Done()
			articles, err := backend.FetchJournal(ctx, j, q, cfg)
			ch <- journalResult{articles: articles, err: err, name: j.Name}
		}(j)
	}

	go func() {
		wg.Wait()
		close(ch)
	}()

	byJournal := make(map[string]journalResult, len(journals))
	for jr := range ch {
		byJournal[jr.name] = jr
	}

	// Reassemble in journal-request order so downstream tie-breaking is
	// deterministic run to run.
	var out Output
	for _, j := range journals {
		jr := byJournal[j.Name]
		if jr.err != nil {
			out.JournalErrors = append(out.JournalErrors, fmt.Sprintf("%s: %v", jr.name, jr.err))
			fmt.Fprintf(w, "warning: fetching %s failed: %v\n", jr.name, jr.err)
			continue
		}
		out.Articles = append(out.Articles, jr.articles...)
	}
	return out, nil
}
