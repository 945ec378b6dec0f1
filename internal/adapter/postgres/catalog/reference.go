package catalog

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/moviesearch/internal/domain"
)

// Fallback year bounds used when the catalog is unreachable, so the year
// prompts stay usable.
const (
	fallbackYearFrom = 1990
	fallbackYearTo   = 2025
)

const yearRangeSQL = `SELECT COALESCE(MIN(release_year), 0), COALESCE(MAX(release_year), 0) FROM film`

// YearRange returns the observed minimum and maximum release year of the
// catalog. On any failure (including an empty catalog) it falls back to
// (1990, 2025).
func (r *Repo) YearRange(ctx context.Context) (int, int) {
	var minYear, maxYear int
	if err := r.q.QueryRow(ctx, yearRangeSQL).Scan(&minYear, &maxYear); err != nil {
		r.log.Warn("catalog: year range query failed", "err", err)
		return fallbackYearFrom, fallbackYearTo
	}
	if minYear == 0 || maxYear == 0 {
		return fallbackYearFrom, fallbackYearTo
	}
	return minYear, maxYear
}

// ListGenres returns the genres associated with at least one movie, sorted
// by name. On failure it returns an empty list.
func (r *Repo) ListGenres(ctx context.Context) []domain.Genre {
	query := builder.Select("c.category_id", "c.name").
		Distinct().
		From("category c").
		Join("film_category fc ON c.category_id = fc.category_id").
		GroupBy("c.category_id", "c.name").
		OrderBy("c.name")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		r.log.Warn("catalog: genre list query failed", "err", err)
		return []domain.Genre{}
	}

	var genres []domain.Genre
	if err := pgxscan.Select(ctx, r.q, &genres, sqlStr, args...); err != nil {
		r.log.Warn("catalog: genre list query failed", "err", err)
		return []domain.Genre{}
	}
	if genres == nil {
		genres = []domain.Genre{}
	}
	return genres
}
