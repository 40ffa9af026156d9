// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jcvillada/givelit/pkg/types"
)

// htmlPage is the data handed to the report template.
type htmlPage struct {
	Keywords  string
	Journals  string
	Generated string
	Missing   string
	Summary   []string
	Cards     []htmlCard
}

// htmlCard is one article card with display-ready fields.
type htmlCard struct {
	Title   string
	URL     string
	Journal string
	Date    string
	Age     string
	Score   string
	Authors string
	Summary string
}

// WriteHTML renders the selection as a standalone HTML report at path,
// creating parent directories as needed. Returns the path written.
func WriteHTML(selected []types.SelectedArticle, keywords, journals, missing []string, path string) (string, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("creating report directory: %w", err)
		}
	}

	page := htmlPage{
		Keywords:  quoteAll(keywords),
		Journals:  strings.Join(journals, ", "),
		Generated: time.Now().UTC().Format("2006-01-02 15:04 UTC"),
		Missing:   strings.Join(missing, ", "),
		Summary:   asciiPlot(summarize(selected), plotWidth),
	}
	for _, row := range selected {
		page.Cards = append(page.Cards, toCard(row))
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	if err := reportTemplate.Execute(f, page); err != nil {
		return "", fmt.Errorf("rendering report: %w", err)
	}
	return path, nil
}

func toCard(row types.SelectedArticle) htmlCard {
	authors := row.Authors
	if len(authors) > 6 {
		authors = authors[:6]
	}
	authorText := strings.Join(authors, ", ")
	if authorText == "" {
		authorText = "Unknown authors"
	} else if len(row.Authors) > 6 {
		authorText += ", et al."
	}

	summary := row.Abstract
	if summary == "" {
		summary = "No abstract available."
	}

	age := "Days ago: unknown"
	if row.DaysAgo != nil {
		age = fmt.Sprintf("Days ago: %d", *row.DaysAgo)
	}

	return htmlCard{
		Title:   row.Title,
		URL:     row.URL,
		Journal: row.Journal,
		Date:    row.FormattedDate(),
		Age:     age,
		Score:   fmt.Sprintf("%.2f", row.Score),
		Authors: authorText,
		Summary: summary,
	}
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <title>GiveLit Report</title>
    <style>
        :root {
            --bg: #040404;
            --text: #7fffb3;
            --accent: #00ff90;
            --muted: #3ddc84;
            --journal: #b8ffd6;
            --border: rgba(0, 255, 144, 0.35);
        }
        * { box-sizing: border-box; }
        body {
            margin: 0 auto;
            padding: 2.5rem 1.5rem;
            max-width: 880px;
            background: var(--bg);
            color: var(--text);
            font-family: "IBM Plex Mono", "SFMono-Regular", Menlo, Consolas, "Liberation Mono", monospace;
            letter-spacing: 0.03em;
        }
        header.page-header { margin-bottom: 2rem; }
        header.page-header h1 { margin: 0 0 0.75rem 0; font-size: 2rem; color: var(--accent); }
        header.page-header p { margin: 0.25rem 0; }
        .summary-plot {
            margin: 0 0 1.8rem 0;
            padding: 1rem;
            border: 1px solid var(--border);
            border-radius: 0.6rem;
            background: rgba(0, 255, 144, 0.04);
            color: var(--text);
            white-space: pre;
            font-size: 0.9rem;
            line-height: 1.5;
        }
        .card {
            padding: 1.2rem;
            border: 1px solid var(--border);
            border-radius: 0.75rem;
            margin-bottom: 1.1rem;
        }
        .card h2 { margin: 0 0 0.6rem 0; font-size: 1.25rem; color: var(--accent); }
        .card a { color: var(--accent); text-decoration: none; }
        .card a:hover { text-decoration: underline; }
        .meta {
            display: flex;
            flex-wrap: wrap;
            gap: 0.75rem;
            font-size: 0.85rem;
            color: var(--muted);
        }
        .journal { color: var(--journal); text-transform: uppercase; letter-spacing: 0.08em; }
        .separator { color: var(--muted); opacity: 0.6; }
        .score {
            display: inline-flex;
            align-items: center;
            gap: 0.45rem;
            padding: 0.35rem 0.6rem;
            border: 1px solid var(--accent);
            border-radius: 0.4rem;
            background: rgba(0, 255, 144, 0.08);
        }
        .score .badge { font-size: 0.7rem; text-transform: uppercase; letter-spacing: 0.12em; }
        .score .value { font-weight: 600; color: var(--accent); }
        .age { color: var(--journal); }
        .authors { font-size: 0.9rem; margin: 0.9rem 0 0.6rem 0; color: var(--text); }
        .abstract { font-size: 0.95rem; line-height: 1.6; color: var(--muted); }
        .missing { margin-top: 0.75rem; font-size: 0.9rem; color: var(--muted); }
        footer { margin-top: 2rem; font-size: 0.85rem; color: var(--muted); }
    </style>
</head>
<body>
    <header class="page-header">
        <h1>GiveLit Radar</h1>
        <p>Keywords: {{.Keywords}}</p>
        <p>Journals: {{.Journals}}</p>
        <p>Generated: {{.Generated}}</p>
        {{if .Missing}}<p class="missing">No recent matches for: {{.Missing}}</p>{{end}}
    </header>
    <main>
        {{if .Summary}}<pre class="summary-plot">{{range .Summary}}{{.}}
{{end}}</pre>{{end}}
        {{range .Cards}}
        <article class="card">
            <header>
                <h2>{{if .URL}}<a href="{{.URL}}" target="_blank" rel="noopener">{{.Title}}</a>{{else}}{{.Title}}{{end}}</h2>
                <div class="meta">
                    <span class="journal">Journal: {{.Journal}}</span>
                    <span class="separator">|</span>
                    <span class="date">{{.Date}}</span>
                    <span class="separator">|</span>
                    <span class="age">{{.Age}}</span>
                    <span class="separator">|</span>
                    <span class="score"><span class="badge">GiveLit score</span><span class="value">{{.Score}}</span></span>
                </div>
            </header>
            <p class="authors">{{.Authors}}</p>
            <p class="abstract">{{.Summary}}</p>
        </article>
        {{else}}
        <p>No articles matched the filters.</p>
        {{end}}
    </main>
    <footer>
        Crafted with GiveLit — stay on top of the literature.
    </footer>
</body>
</html>
`))
