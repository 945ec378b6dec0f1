package domain

import (
	"reflect"
	"testing"
)

func TestNormalizeKeyword(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims and lowers", "  Thriller  ", "thriller"},
		{"already normalized", "matrix", "matrix"},
		{"only whitespace", "   ", ""},
		{"empty", "", ""},
		{"cyrillic", " Матрица ", "матрица"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeKeyword(tt.in); got != tt.want {
				t.Errorf("NormalizeKeyword(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanGenres(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"drops blanks", []string{"Action", "", "  ", "Comedy"}, []string{"Action", "Comedy"}},
		{"trims entries", []string{" Drama ", "Horror"}, []string{"Drama", "Horror"}},
		{"preserves order", []string{"Sci-Fi", "Action"}, []string{"Sci-Fi", "Action"}},
		{"all blank", []string{"", " "}, []string{}},
		{"nil input", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanGenres(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CleanGenres(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSortedGenres(t *testing.T) {
	got := SortedGenres([]string{" drama ", "Comedy", ""})
	want := []string{"Comedy", "drama"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortedGenres() = %v, want %v", got, want)
	}
}

func TestLogEntryDedupKey(t *testing.T) {
	tests := []struct {
		name string
		e    LogEntry
		want string
	}{
		{
			name: "keyword",
			e:    LogEntry{Kind: KindKeyword, Keyword: "matrix"},
			want: "keyword|matrix",
		},
		{
			name: "genre year range",
			e:    LogEntry{Kind: KindGenreYear, Genres: []string{"Action", "Comedy"}, Years: "2000–2010"},
			want: "genre_year|Action,Comedy|2000–2010",
		},
		{
			name: "genre exact year",
			e:    LogEntry{Kind: KindGenreExactYear, Genres: []string{"Drama"}, Year: 1995},
			want: "genre_exact_year|Drama|1995",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.DedupKey(); got != tt.want {
				t.Errorf("DedupKey() = %q, want %q", got, tt.want)
			}
		})
	}
}
