package report

import (
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/jcvillada/givelit/pkg/types"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style Language)
// format. The field names and structure follow the CSL-JSON/CSL-YAML schema
// so that output is consumable by Pandoc and reference managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	Author         []CSLName `yaml:"author,omitempty"`
	Abstract       string    `yaml:"abstract,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
	DOI            string    `yaml:"DOI,omitempty"`
	URL            string    `yaml:"URL,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// FormatCSL writes the selection as a CSL-YAML list to w.
func FormatCSL(selected []types.SelectedArticle, w io.Writer) error {
	items := make([]CSLItem, len(selected))
	for i, row := range selected {
		items[i] = toCSLItem(row)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// toCSLItem converts a selected article to a CSLItem. The DOI doubles as
// the citation ID when present; otherwise the URL is used.
func toCSLItem(row types.SelectedArticle) CSLItem {
	item := CSLItem{
		ID:             row.DOI,
		Type:           "article-journal",
		Title:          row.Title,
		ContainerTitle: row.Journal,
		Abstract:       row.Abstract,
		DOI:            row.DOI,
		URL:            row.URL,
	}
	if item.ID == "" {
		item.ID = row.URL
	}

	for _, a := range row.Authors {
		item.Author = append(item.Author, parseAuthorName(a))
	}

	if row.Published != nil {
		item.Issued = &CSLDate{
			DateParts: [][]int{{row.Published.Year(), int(row.Published.Month()), row.Published.Day()}},
		}
	}
	return item
}

// parseAuthorName splits a full name string into CSL family/given parts.
// It splits on the last space: everything before is given, the last token
// is family. Single-token names use the literal field.
func parseAuthorName(name string) CSLName {
	name = strings.TrimSpace(name)
	if name == "" {
		return CSLName{}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return CSLName{Literal: name}
	}
	return CSLName{
		Given:  name[:idx],
		Family: name[idx+1:],
	}
}
