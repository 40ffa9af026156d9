// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jcvillada/givelit/internal/fetch"
	"github.com/jcvillada/givelit/internal/journal"
	"github.com/jcvillada/givelit/internal/relevance"
	"github.com/jcvillada/givelit/internal/report"
	"github.com/jcvillada/givelit/pkg/types"
)

const defaultUserAgent = "givelit/0.1 (+https://github.com/jcvillada/givelit)"

var radarCmd = &cobra.Command{
	Use:   "radar",
	Short: "Surface the most relevant recent articles for the chosen journals",
	Long: `Radar queries Crossref for each requested journal, scores the returned
articles against the keyword set, interleaves per-journal results so every
journal is represented, and renders the bounded report.

Use --save to keep the run as a YAML file and --load to re-render a saved
run without touching the network.`,
	RunE: runRadar,
}

func init() {
	radarCmd.Flags().StringSliceP("keyword", "k", []string{"metagenomics"}, "keyword used to rank relevance (repeat for multiple terms)")
	radarCmd.Flags().StringSliceP("journal", "j", nil, "journal key or name to query, or \"all\" (repeat for more than one)")
	radarCmd.Flags().IntP("limit", "n", 12, "maximum number of articles in the final report (1-100)")
	radarCmd.Flags().IntP("days", "d", 30, "only include articles published within the last N days (0 disables the filter)")
	radarCmd.Flags().String("sort", "score", "result ordering: score, recency, or journal")
	radarCmd.Flags().StringP("format", "f", "cli", "report format: cli, web, json, or csl")
	radarCmd.Flags().StringP("output", "o", "givelit-report.html", "path for the generated HTML when using --format web")
	radarCmd.Flags().String("save", "", "save the run (query and selection) to a YAML file")
	radarCmd.Flags().String("load", "", "re-render a previously saved run instead of querying Crossref")
	radarCmd.Flags().Duration("timeout", 15*time.Second, "HTTP request timeout")
	radarCmd.Flags().String("mailto", "", "contact email for Crossref polite-pool access (default: .secrets/crossref-mailto)")

	viper.BindPFlag("rank.keywords", radarCmd.Flags().Lookup("keyword"))
	viper.BindPFlag("rank.journals", radarCmd.Flags().Lookup("journal"))
	viper.BindPFlag("rank.limit", radarCmd.Flags().Lookup("limit"))
	viper.BindPFlag("rank.days", radarCmd.Flags().Lookup("days"))
	viper.BindPFlag("rank.sort", radarCmd.Flags().Lookup("sort"))
	viper.BindPFlag("report.format", radarCmd.Flags().Lookup("format"))
	viper.BindPFlag("report.output", radarCmd.Flags().Lookup("output"))
	viper.BindPFlag("fetch.timeout", radarCmd.Flags().Lookup("timeout"))
	viper.BindPFlag("fetch.mailto", radarCmd.Flags().Lookup("mailto"))
	viper.SetDefault("fetch.user_agent", defaultUserAgent)
	viper.SetDefault("fetch.max_retries", 5)

	rootCmd.AddCommand(radarCmd)
}

func runRadar(cmd *cobra.Command, args []string) error {
	format := types.ReportFormat(viper.GetString("report.format"))
	switch format {
	case types.FormatCLI, types.FormatWeb, types.FormatJSON, types.FormatCSL:
	default:
		return fmt.Errorf("unrecognized format %q (want cli, web, json, or csl)", format)
	}
	output := viper.GetString("report.output")

	if load, _ := cmd.Flags().GetString("load"); load != "" {
		rf, err := report.ReadRadarFile(load)
		if err != nil {
			return err
		}
		return render(format, output, rf.Results, rf.Query.Keywords, rf.Query.Journals, rf.Summary.MissingJournals)
	}

	keywords := cleanKeywords(viper.GetStringSlice("rank.keywords"))
	if len(keywords) == 0 {
		return fmt.Errorf("please provide at least one keyword")
	}

	limit := viper.GetInt("rank.limit")
	if limit < 1 || limit > 100 {
		return fmt.Errorf("limit must be between 1 and 100, got %d", limit)
	}
	days := viper.GetInt("rank.days")
	if days < 0 {
		return fmt.Errorf("days must be non-negative, got %d", days)
	}
	mode := types.SortMode(viper.GetString("rank.sort"))

	journals, err := journal.Resolve(viper.GetStringSlice("rank.journals"))
	if err != nil {
		return err
	}
	names := journal.Names(journals)

	fetchCfg := types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("fetch.timeout"),
			UserAgent: viper.GetString("fetch.user_agent"),
		},
		Mailto:     secretDefault("crossref-mailto", viper.GetString("fetch.mailto")),
		MaxRetries: viper.GetInt("fetch.max_retries"),
	}

	fmt.Fprintf(os.Stderr, "Scanning %d journal(s) for %s…\n", len(journals), strings.Join(keywords, ", "))

	backend := &fetch.CrossrefBackend{
		Client: &http.Client{Timeout: fetchCfg.Timeout},
		Mailto: fetchCfg.Mailto,
		Log:    os.Stderr,
	}
	q := fetch.Query{Keywords: keywords, Days: days, Limit: limit}

	out, err := fetch.Collect(cmd.Context(), backend, journals, q, fetchCfg, os.Stderr)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	articles := filterArticles(out.Articles, days, now)

	scored, err := relevance.ScoreAll(articles, keywords, days, now)
	if err != nil {
		return err
	}
	selected, err := relevance.Select(scored, names, mode, limit)
	if err != nil {
		return err
	}

	missing := missingJournals(names, articles)

	if save, _ := cmd.Flags().GetString("save"); save != "" {
		params := report.RadarParams{Keywords: keywords, Journals: names, Days: days, Limit: limit, Sort: mode}
		if err := report.WriteRadarFile(save, params, selected, missing, out.JournalErrors); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Run saved to %s\n", save)
	}

	return render(format, output, selected, keywords, names, missing)
}

// render dispatches the selection to the renderer for the chosen format.
func render(format types.ReportFormat, output string, selected []types.SelectedArticle, keywords, journals, missing []string) error {
	switch format {
	case types.FormatWeb:
		path, err := report.WriteHTML(selected, keywords, journals, missing, output)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Report saved to %s\n", path)
		return nil
	case types.FormatJSON:
		return report.FormatJSON(selected, os.Stdout)
	case types.FormatCSL:
		return report.FormatCSL(selected, os.Stdout)
	default:
		report.FormatTable(selected, keywords, journals, missing, os.Stdout)
		return nil
	}
}

// cleanKeywords trims and drops empty keyword values.
func cleanKeywords(keywords []string) []string {
	var cleaned []string
	for _, kw := range keywords {
		if t := strings.TrimSpace(kw); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	return cleaned
}

// filterArticles drops articles with no landing URL and, when a window
// is set, articles published before the window. Articles with unknown
// dates pass through; scoring treats them neutrally.
func filterArticles(articles []types.Article, days int, now time.Time) []types.Article {
	var kept []types.Article
	for _, a := range articles {
		if a.URL == "" {
			continue
		}
		if days > 0 && a.Published != nil {
			if age := int(now.Sub(*a.Published).Hours() / 24); age > days {
				continue
			}
		}
		kept = append(kept, a)
	}
	return kept
}

// missingJournals lists requested journals that contributed no articles.
func missingJournals(names []string, articles []types.Article) []string {
	present := make(map[string]bool)
	for _, a := range articles {
		present[strings.ToLower(a.Journal)] = true
	}
	var missing []string
	for _, name := range names {
		if !present[strings.ToLower(name)] {
			missing = append(missing, name)
		}
	}
	return missing
}
