package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SearchKind discriminates analytics log entries by search mode.
type SearchKind string

const (
	KindKeyword        SearchKind = "keyword"
	KindGenreYear      SearchKind = "genre_year"
	KindGenreExactYear SearchKind = "genre_exact_year"
)

// LogEntry is one analytics record. Entries are created on the first page of
// a logical search and never updated or deleted by this application.
//
// Fields are populated per kind: Keyword for KindKeyword; Genres and Years
// for KindGenreYear; Genres and Year for KindGenreExactYear. Genres are
// cleaned and sorted, Keyword is lower-cased and trimmed.
type LogEntry struct {
	ID        uuid.UUID  `json:"id"`
	Kind      SearchKind `json:"type"`
	Keyword   string     `json:"keyword,omitempty"`
	Genres    []string   `json:"genres,omitempty"`
	Years     string     `json:"years,omitempty"`
	Year      int        `json:"year,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

// DedupKey identifies the (kind, normalized parameters) combination. Two
// entries with the same key may not be created within the dedup window.
func (e LogEntry) DedupKey() string {
	switch e.Kind {
	case KindKeyword:
		return fmt.Sprintf("%s|%s", e.Kind, e.Keyword)
	case KindGenreYear:
		return fmt.Sprintf("%s|%s|%s", e.Kind, strings.Join(e.Genres, ","), e.Years)
	case KindGenreExactYear:
		return fmt.Sprintf("%s|%s|%d", e.Kind, strings.Join(e.Genres, ","), e.Year)
	default:
		return string(e.Kind)
	}
}

// SearchCount is a popularity counter for the statistics screen.
type SearchCount struct {
	Name  string
	Count int64
}
