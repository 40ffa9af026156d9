// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/jcvillada/givelit/internal/httputil"
	"github.com/jcvillada/givelit/pkg/types"
)

// crossrefWorksBase is the Crossref Works endpoint. Declared as a var so
// tests can substitute an httptest server.
var crossrefWorksBase = "https://api.crossref.org/works"

// crossrefSelect limits the response to the fields the pipeline consumes.
const crossrefSelect = "title,author,issued,published,URL,DOI,abstract,score,container-title"

// CrossrefBackend queries the Crossref Works API.
type CrossrefBackend struct {
	Client *http.Client

	// Mailto is sent as the mailto parameter for polite-pool access.
	Mailto string

	// Log receives rate-limit warnings; nil discards them.
	Log io.Writer
}

// Name returns the backend identifier.
func (b *CrossrefBackend) Name() string { return "crossref" }

// FetchJournal queries Crossref for one journal and returns normalized
// articles. Crossref sorts by its own relevance score; the request
// over-fetches (up to 2x the report limit) so the ranking stage has a
// candidate pool to interleave and backfill from.
func (b *CrossrefBackend) FetchJournal(ctx context.Context, journal types.JournalConfig, q Query, cfg types.FetchConfig) ([]types.Article, error) {
	queryText := strings.TrimSpace(strings.Join(q.Keywords, " "))
	if queryText == "" {
		return nil, fmt.Errorf("empty Crossref query")
	}

	rows := q.Limit * 3
	if rows < 20 {
		rows = 20
	}
	if rows > 150 {
		rows = 150
	}

	filters := []string{"container-title:" + journal.ContainerTitle}
	if q.Days > 0 {
		cutoff := time.Now().UTC().AddDate(0, 0, -q.Days)
		filters = append(filters, "from-pub-date:"+cutoff.Format("2006-01-02"))
	}

	params := url.Values{
		"query":  {queryText},
		"select": {crossrefSelect},
		"sort":   {"score"},
		"order":  {"desc"},
		"rows":   {fmt.Sprintf("%d", rows)},
		"filter": {strings.Join(filters, ",")},
	}
	if b.Mailto != "" {
		params.Set("mailto", b.Mailto)
	}

	reqURL := crossrefWorksBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	log := b.Log
	if log == nil {
		log = io.Discard
	}
	resp, err := httputil.DoWithRetry(ctx, b.Client, req, cfg.MaxRetries, log)
	if err != nil {
		return nil, fmt.Errorf("Crossref API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Crossref API returned HTTP %d", resp.StatusCode)
	}

	var cr crossrefResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, fmt.Errorf("parsing Crossref response: %w", err)
	}

	var articles []types.Article
	for _, work := range cr.Message.Items {
		title := "Untitled"
		if len(work.Title) > 0 && work.Title[0] != "" {
			title = work.Title[0]
		}

		a := types.Article{
			Journal:         journal.Name,
			Title:           title,
			URL:             work.URL,
			DOI:             strings.TrimPrefix(work.DOI, "https://doi.org/"),
			Abstract:        flattenAbstract(work.Abstract),
			Published:       parseDateParts(work.Published, work.Issued),
			SourceRelevance: work.Score,
		}
		for _, author := range work.Author {
			a.Authors = append(a.Authors, authorName(author))
		}
		articles = append(articles, a)
	}

	if max := q.Limit * 2; max > 0 && len(articles) > max {
		articles = articles[:max]
	}
	return articles, nil
}

// authorName assembles "Given Family" with fallbacks for partial records.
func authorName(author crossrefAuthor) string {
	switch {
	case author.Given != "" && author.Family != "":
		return author.Given + " " + author.Family
	case author.Literal != "":
		return author.Literal
	case author.Family != "":
		return author.Family
	case author.Given != "":
		return author.Given
	default:
		return "Unknown"
	}
}

// parseDateParts converts a Crossref date-parts payload into a UTC time.
// Crossref dates may carry only a year, or year and month; missing parts
// default to 1. The published field wins over issued. Returns nil when
// neither field parses.
func parseDateParts(candidates ...*crossrefDate) *time.Time {
	for _, c := range candidates {
		if c == nil || len(c.DateParts) == 0 || len(c.DateParts[0]) == 0 {
			continue
		}
		parts := c.DateParts[0]
		year := parts[0]
		month, day := 1, 1
		if len(parts) > 1 {
			month = parts[1]
		}
		if len(parts) > 2 {
			day = parts[2]
		}
		if year <= 0 || month < 1 || month > 12 || day < 1 || day > 31 {
			continue
		}
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		return &t
	}
	return nil
}

// flattenAbstract strips the JATS/HTML markup Crossref wraps abstracts
// in and collapses the text into a single space-separated string.
func flattenAbstract(raw string) string {
	if raw == "" {
		return ""
	}
	tok := html.NewTokenizer(strings.NewReader(raw))
	var parts []string
	for {
		tt := tok.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt != html.TextToken {
			continue
		}
		if text := strings.TrimSpace(string(tok.Text())); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

// Crossref API JSON structures.
type crossrefResponse struct {
	Status  string          `json:"status"`
	Message crossrefMessage `json:"message"`
}

type crossrefMessage struct {
	TotalResults int            `json:"total-results"`
	Items        []crossrefWork `json:"items"`
}

type crossrefWork struct {
	Title          []string         `json:"title"`
	Author         []crossrefAuthor `json:"author"`
	Issued         *crossrefDate    `json:"issued"`
	Published      *crossrefDate    `json:"published"`
	URL            string           `json:"URL"`
	DOI            string           `json:"DOI"`
	Abstract       string           `json:"abstract"`
	Score          *float64         `json:"score"`
	ContainerTitle []string         `json:"container-title"`
}

type crossrefAuthor struct {
	Given   string `json:"given"`
	Family  string `json:"family"`
	Literal string `json:"name"`
}

type crossrefDate struct {
	DateParts [][]int `json:"date-parts"`
}
