// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders a selection as a CLI table, an HTML page, JSON,
// or a CSL-YAML bibliography, and saves radar runs to YAML files.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jcvillada/givelit/pkg/types"
)

// FormatTable writes the selection as a human-readable table to w,
// preceded by the per-journal summary plot. The rows arrive pre-ranked;
// no sorting happens here.
func FormatTable(selected []types.SelectedArticle, keywords, journals, missing []string, w io.Writer) {
	fmt.Fprintln(w, "GiveLit — recent literature radar")
	fmt.Fprintf(w, "Keywords: %s | Journals: %s\n\n", quoteAll(keywords), strings.Join(journals, ", "))

	if lines := asciiPlot(summarize(selected), plotWidth); len(lines) > 0 {
		fmt.Fprintln(w, "Journal summary")
		for _, line := range lines {
			fmt.Fprintln(w, line)
		}
		fmt.Fprintln(w)
	}

	if len(selected) == 0 {
		fmt.Fprintln(w, "No articles matched the filters.")
		printMissing(missing, w)
		return
	}

	fmt.Fprintf(w, "%-4s  %-22s  %-52s  %-10s  %-6s  %-4s  %s\n",
		"Rank", "Journal", "Title", "Date", "Score", "Days", "Authors")
	fmt.Fprintln(w, strings.Repeat("-", 118))

	for _, row := range selected {
		title := strings.TrimSpace(row.Title)
		if title == "" {
			title = "Untitled"
		}
		days := "—"
		if row.DaysAgo != nil {
			days = fmt.Sprintf("%d", *row.DaysAgo)
		}
		fmt.Fprintf(w, "%-4d  %-22s  %-52s  %-10s  %-6.2f  %-4s  %s\n",
			row.Rank,
			truncate(row.Journal, 22),
			truncate(title, 52),
			row.FormattedDate(),
			row.Score,
			days,
			formatAuthors(row.Authors))
	}

	fmt.Fprintf(w, "\n%d articles\n", len(selected))
	printMissing(missing, w)
}

// FormatJSON writes the selection as indented JSON to w.
func FormatJSON(selected []types.SelectedArticle, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(selected)
}

func printMissing(missing []string, w io.Writer) {
	if len(missing) > 0 {
		fmt.Fprintf(w, "No matches returned for: %s\n", strings.Join(missing, ", "))
	}
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}

// formatAuthors shows up to four authors and collapses the rest.
func formatAuthors(authors []string) string {
	if len(authors) == 0 {
		return "—"
	}
	shown := authors
	if len(shown) > 4 {
		shown = shown[:4]
	}
	s := strings.Join(shown, ", ")
	if len(authors) > 4 {
		s += ", et al."
	}
	return s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
