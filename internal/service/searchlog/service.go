// Package searchlog records search analytics with best-effort deduplication
// and serves the statistics screen.
package searchlog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/moviesearch/internal/domain"
)

// DedupWindow is how long an inserted entry suppresses identical ones.
const DedupWindow = 5 * time.Second

// minLoggedYear is the floor below which exact-year searches are not logged.
// Range searches carry no such floor.
const minLoggedYear = 1990

// Store is the analytics log sink. Implemented by redislog.Store.
type Store interface {
	FindRecent(ctx context.Context, key string) (bool, error)
	Insert(ctx context.Context, e domain.LogEntry) error
	TopKeywords(ctx context.Context, limit int) ([]domain.SearchCount, error)
	TopGenres(ctx context.Context, limit int) ([]domain.SearchCount, error)
	Recent(ctx context.Context, limit int) ([]domain.LogEntry, error)
}

// Service normalizes search events and writes at most one log entry per
// distinct (kind, normalized parameters) combination within the dedup
// window. Recording is purely observational: it never returns anything to
// gate the caller on, and store failures are logged and swallowed.
type Service struct {
	store Store
	log   *slog.Logger
	now   func() time.Time
}

// NewService creates the logger on top of a Store.
func NewService(store Store, log *slog.Logger) *Service {
	return &Service{store: store, log: log, now: time.Now}
}

// RecordKeyword logs a keyword search. The keyword is lower-cased and
// trimmed first; an empty result means nothing is written.
func (s *Service) RecordKeyword(ctx context.Context, keyword string) {
	kw := domain.NormalizeKeyword(keyword)
	if kw == "" {
		return
	}

	s.record(ctx, domain.LogEntry{
		Kind:      domain.KindKeyword,
		Keyword:   kw,
		Timestamp: s.now().UTC(),
	})
}

// RecordGenreYearRange logs a genre + year-range search. Genres are cleaned
// and sorted; an empty list means nothing is written. The year range is not
// floor-checked, unlike the exact-year mode.
func (s *Service) RecordGenreYearRange(ctx context.Context, genres []string, yearFrom, yearTo int) {
	clean := domain.SortedGenres(genres)
	if len(clean) == 0 {
		return
	}

	s.record(ctx, domain.LogEntry{
		Kind:      domain.KindGenreYear,
		Genres:    clean,
		Years:     fmt.Sprintf("%d–%d", yearFrom, yearTo),
		Timestamp: s.now().UTC(),
	})
}

// RecordGenreExactYear logs a genre + exact-year search. Besides the genre
// cleaning, years before 1990 are rejected outright.
func (s *Service) RecordGenreExactYear(ctx context.Context, genres []string, year int) {
	clean := domain.SortedGenres(genres)
	if len(clean) == 0 || year < minLoggedYear {
		return
	}

	s.record(ctx, domain.LogEntry{
		Kind:      domain.KindGenreExactYear,
		Genres:    clean,
		Year:      year,
		Timestamp: s.now().UTC(),
	})
}

// record applies the dedup window and inserts. The lookup and the insert are
// two store calls; a near-simultaneous writer can still double-insert, which
// is accepted.
func (s *Service) record(ctx context.Context, e domain.LogEntry) {
	seen, err := s.store.FindRecent(ctx, e.DedupKey())
	if err != nil {
		s.log.Warn("search log: dedup lookup failed", "err", err)
		return
	}
	if seen {
		return
	}

	if err := s.store.Insert(ctx, e); err != nil {
		s.log.Warn("search log: insert failed", "err", err)
		return
	}

	s.log.Info("search recorded",
		"type", string(e.Kind),
		"keyword", e.Keyword,
		"genres", e.Genres,
		"years", e.Years,
		"year", e.Year,
	)
}

// TopKeywords returns the most searched keywords for the statistics screen.
func (s *Service) TopKeywords(ctx context.Context, limit int) ([]domain.SearchCount, error) {
	return s.store.TopKeywords(ctx, limit)
}

// TopGenres returns the most searched genres for the statistics screen.
func (s *Service) TopGenres(ctx context.Context, limit int) ([]domain.SearchCount, error) {
	return s.store.TopGenres(ctx, limit)
}

// Recent returns the latest recorded searches, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]domain.LogEntry, error) {
	return s.store.Recent(ctx, limit)
}
