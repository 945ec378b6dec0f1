// Package search composes the catalog queries with analytics recording.
//
// Historically the logging lived in a decorator around the query functions;
// here the composition is explicit: record first (unless the caller says the
// session is already logged), then query. The two are decoupled failure
// domains — a dead log store never blocks a search, and vice versa.
package search

import (
	"context"

	"github.com/heartmarshall/moviesearch/internal/domain"
)

// Catalog is the query side. Implemented by catalog.Repo; fail-soft, always
// returns a well-formed page.
type Catalog interface {
	ByKeyword(ctx context.Context, keyword string, offset int) domain.PageResult
	ByGenreYearRange(ctx context.Context, c domain.GenreYearRange, offset int) domain.PageResult
	ByGenreExactYear(ctx context.Context, c domain.GenreExactYear, offset int) domain.PageResult
}

// Recorder is the analytics side. Implemented by searchlog.Service.
type Recorder interface {
	RecordKeyword(ctx context.Context, keyword string)
	RecordGenreYearRange(ctx context.Context, genres []string, yearFrom, yearTo int)
	RecordGenreExactYear(ctx context.Context, genres []string, year int)
}

// Service is the search facade used by the interactive controller. Each
// method mirrors the underlying query plus a logged flag: the first page of
// a paginated session passes logged=false, subsequent pages pass true and
// skip recording entirely.
type Service struct {
	catalog  Catalog
	recorder Recorder
}

func NewService(catalog Catalog, recorder Recorder) *Service {
	return &Service{catalog: catalog, recorder: recorder}
}

// ByKeyword searches by title substring.
func (s *Service) ByKeyword(ctx context.Context, keyword string, offset int, logged bool) domain.PageResult {
	if !logged {
		s.recorder.RecordKeyword(ctx, keyword)
	}
	return s.catalog.ByKeyword(ctx, keyword, offset)
}

// ByGenreYearRange searches by genre set and inclusive year range.
func (s *Service) ByGenreYearRange(ctx context.Context, c domain.GenreYearRange, offset int, logged bool) domain.PageResult {
	if !logged {
		s.recorder.RecordGenreYearRange(ctx, c.Genres, c.YearFrom, c.YearTo)
	}
	return s.catalog.ByGenreYearRange(ctx, c, offset)
}

// ByGenreExactYear searches by genre set and exact year. The recorder may
// reject the event (year floor) while the query still runs.
func (s *Service) ByGenreExactYear(ctx context.Context, c domain.GenreExactYear, offset int, logged bool) domain.PageResult {
	if !logged {
		s.recorder.RecordGenreExactYear(ctx, c.Genres, c.Year)
	}
	return s.catalog.ByGenreExactYear(ctx, c, offset)
}
