// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package journal

import (
	"testing"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Nature Microbiology", "nature-microbiology"},
		{"Cell Systems", "cell-systems"},
		{"mBio", "mbio"},
		{"  PLoS ONE  ", "plos-one"},
		{"The ISME Journal!", "the-isme-journal"},
		{"---", "journal"},
		{"", "journal"},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := NormalizeKey(tt.label); got != tt.want {
				t.Errorf("NormalizeKey(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

func TestResolveDefaults(t *testing.T) {
	for _, values := range [][]string{nil, {}, {""}, {" , ; "}} {
		resolved, err := Resolve(values)
		if err != nil {
			t.Fatalf("Resolve(%v) error = %v", values, err)
		}
		if len(resolved) != len(Defaults) {
			t.Fatalf("Resolve(%v) returned %d journals, want %d", values, len(resolved), len(Defaults))
		}
		for i, j := range resolved {
			if j != Defaults[i] {
				t.Errorf("resolved[%d] = %+v, want default %+v", i, j, Defaults[i])
			}
		}
	}
}

func TestResolveAllSentinel(t *testing.T) {
	resolved, err := Resolve([]string{"ALL"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(resolved) != len(Defaults) {
		t.Fatalf("len(resolved) = %d, want %d", len(resolved), len(Defaults))
	}
	for i, j := range resolved {
		if j != Defaults[i] {
			t.Errorf("resolved[%d] = %+v, want default %+v in declared order", i, j, Defaults[i])
		}
	}
}

func TestResolveKnownLabels(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string // expected key
	}{
		{"by key", "nature-microbiology", "nature-microbiology"},
		{"by name case-insensitive", "SCIENCE", "science"},
		{"by container title", "Cell Systems", "cell-systems"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := Resolve([]string{tt.value})
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if len(resolved) != 1 {
				t.Fatalf("len(resolved) = %d, want 1", len(resolved))
			}
			if resolved[0].Key != tt.want {
				t.Errorf("key = %q, want %q", resolved[0].Key, tt.want)
			}
		})
	}
}

func TestResolveUnknownLabelBecomesAdHoc(t *testing.T) {
	resolved, err := Resolve([]string{"The ISME Journal"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(resolved) != 1 {
		t.Fatalf("len(resolved) = %d, want 1", len(resolved))
	}
	j := resolved[0]
	if j.Key != "the-isme-journal" {
		t.Errorf("key = %q, want the-isme-journal", j.Key)
	}
	if j.Name != "The ISME Journal" || j.ContainerTitle != "The ISME Journal" {
		t.Errorf("name/container = %q/%q, want the literal label", j.Name, j.ContainerTitle)
	}
}

func TestResolveSplitsAndDedupes(t *testing.T) {
	resolved, err := Resolve([]string{"science, Cell Systems; science", "Science"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(resolved) != 2 {
		t.Fatalf("len(resolved) = %d, want 2 (duplicates collapsed)", len(resolved))
	}
	if resolved[0].Key != "science" || resolved[1].Key != "cell-systems" {
		t.Errorf("keys = %q, %q; want science, cell-systems (first occurrence order)", resolved[0].Key, resolved[1].Key)
	}
}

func TestNames(t *testing.T) {
	names := Names(Defaults)
	want := []string{"Nature Microbiology", "Science", "Cell Systems"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
