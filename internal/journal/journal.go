// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package journal defines the built-in journal registry and resolves
// user-supplied journal labels into search configurations.
package journal

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jcvillada/givelit/pkg/types"
)

// AllSentinel expands to the full built-in journal list in declared
// order. Expansion happens here; the selection stage never sees it.
const AllSentinel = "all"

// Defaults lists the built-in journals in declared order.
var Defaults = []types.JournalConfig{
	{
		Key:            "nature-microbiology",
		Name:           "Nature Microbiology",
		ContainerTitle: "Nature Microbiology",
	},
	{
		Key:            "science",
		Name:           "Science",
		ContainerTitle: "Science",
	},
	{
		Key:            "cell-systems",
		Name:           "Cell Systems",
		ContainerTitle: "Cell Systems",
	},
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeKey converts an arbitrary journal label to a kebab-case key.
func NormalizeKey(label string) string {
	key := strings.Trim(nonAlnum.ReplaceAllString(strings.ToLower(label), "-"), "-")
	if key == "" {
		return "journal"
	}
	return key
}

// tokenize splits user values on commas and semicolons and trims the parts.
func tokenize(values []string) []string {
	var tokens []string
	for _, value := range values {
		for _, part := range strings.FieldsFunc(value, func(r rune) bool {
			return r == ',' || r == ';'
		}) {
			if cleaned := strings.TrimSpace(part); cleaned != "" {
				tokens = append(tokens, cleaned)
			}
		}
	}
	return tokens
}

// Resolve maps user-supplied journal labels to search configurations.
// Labels match built-in journals by key, name, or container title
// (case-insensitive); unknown labels become ad-hoc journal definitions.
// The "all" sentinel and an empty list both expand to Defaults.
// Duplicate container titles are collapsed, first occurrence wins.
func Resolve(userValues []string) ([]types.JournalConfig, error) {
	tokens := tokenize(userValues)
	if len(tokens) == 0 {
		return append([]types.JournalConfig(nil), Defaults...), nil
	}

	lookup := make(map[string]types.JournalConfig)
	for _, j := range Defaults {
		lookup[strings.ToLower(j.Key)] = j
		lookup[strings.ToLower(j.Name)] = j
		lookup[strings.ToLower(j.ContainerTitle)] = j
	}

	seen := make(map[string]bool)
	var resolved []types.JournalConfig
	for _, token := range tokens {
		lowered := strings.ToLower(token)
		if lowered == AllSentinel {
			for _, j := range Defaults {
				if !seen[j.ContainerTitle] {
					seen[j.ContainerTitle] = true
					resolved = append(resolved, j)
				}
			}
			continue
		}

		j, ok := lookup[lowered]
		if !ok {
			j = types.JournalConfig{
				Key:            NormalizeKey(token),
				Name:           token,
				ContainerTitle: token,
			}
		}
		if !seen[j.ContainerTitle] {
			seen[j.ContainerTitle] = true
			resolved = append(resolved, j)
		}
	}

	if len(resolved) == 0 {
		return nil, fmt.Errorf("no journals resolved from %v", userValues)
	}
	return resolved, nil
}

// Names returns the display names of the given journals in order.
func Names(journals []types.JournalConfig) []string {
	names := make([]string, len(journals))
	for i, j := range journals {
		names[i] = j.Name
	}
	return names
}
