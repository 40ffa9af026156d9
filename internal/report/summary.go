// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jcvillada/givelit/pkg/types"
)

const plotWidth = 18

// journalStat aggregates the selection for one journal.
type journalStat struct {
	Journal  string
	Count    int
	AvgScore float64
}

// summarize groups the selection by journal and computes per-journal
// counts and average scores, ordered by count, then average, then name.
func summarize(selected []types.SelectedArticle) []journalStat {
	sums := make(map[string]*journalStat)
	var order []string
	for _, row := range selected {
		stat, ok := sums[row.Journal]
		if !ok {
			stat = &journalStat{Journal: row.Journal}
			sums[row.Journal] = stat
			order = append(order, row.Journal)
		}
		stat.Count++
		stat.AvgScore += row.Score
	}

	stats := make([]journalStat, 0, len(order))
	for _, name := range order {
		s := *sums[name]
		s.AvgScore /= float64(s.Count)
		stats = append(stats, s)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		if stats[i].AvgScore != stats[j].AvgScore {
			return stats[i].AvgScore > stats[j].AvgScore
		}
		return strings.ToLower(stats[i].Journal) < strings.ToLower(stats[j].Journal)
	})
	return stats
}

// asciiPlot renders one bar per journal, scaled to the largest count.
func asciiPlot(stats []journalStat, width int) []string {
	if len(stats) == 0 {
		return nil
	}
	maxCount := 1
	for _, s := range stats {
		if s.Count > maxCount {
			maxCount = s.Count
		}
	}

	lines := make([]string, 0, len(stats))
	for _, s := range stats {
		length := int(float64(s.Count)/float64(maxCount)*float64(width) + 0.5)
		if s.Count > 0 && length == 0 {
			length = 1
		}
		bar := strings.Repeat("█", length)
		plural := "s"
		if s.Count == 1 {
			plural = ""
		}
		lines = append(lines, fmt.Sprintf("%-22s | %-*s %d article%s, avg %.2f",
			s.Journal, width, bar, s.Count, plural, s.AvgScore))
	}
	return lines
}
