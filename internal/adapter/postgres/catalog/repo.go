// Package catalog implements movie catalog queries over PostgreSQL.
//
// The contract at this boundary is fail-soft: any data-access failure is
// logged and converted into an empty, well-formed result. Callers never see
// an error, the interactive session keeps running.
package catalog

import (
	"context"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/moviesearch/internal/adapter/postgres"
	"github.com/heartmarshall/moviesearch/internal/domain"
)

// builder is the statement builder all catalog queries start from.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo runs parameterized search queries against the movie catalog.
type Repo struct {
	q   postgres.Querier
	log *slog.Logger
}

// New creates a catalog repository on top of a Querier (a pgx pool in
// production, pgxmock in tests).
func New(q postgres.Querier, log *slog.Logger) *Repo {
	return &Repo{q: q, log: log}
}

// ByKeyword returns one page of movies whose title contains the keyword,
// case-insensitively. This mode issues no count query: TotalCount is the
// page length, which understates the real match count on full pages.
func (r *Repo) ByKeyword(ctx context.Context, keyword string, offset int) domain.PageResult {
	query := movieSelect().
		LeftJoin("film_category fc ON f.film_id = fc.film_id").
		LeftJoin("category c ON fc.category_id = c.category_id").
		LeftJoin("film_actor fa ON f.film_id = fa.film_id").
		LeftJoin("actor a ON fa.actor_id = a.actor_id").
		Where(sq.ILike{"f.title": "%" + keyword + "%"}).
		GroupBy("f.film_id").
		OrderBy("f.film_id").
		Limit(domain.PageSize).
		Offset(uint64(offset))

	movies, err := r.selectMovies(ctx, query)
	if err != nil {
		r.log.Warn("catalog: keyword search failed", "keyword", keyword, "err", err)
		return emptyPage()
	}

	return domain.PageResult{Movies: movies, TotalCount: len(movies)}
}

// ByGenreYearRange returns one page of movies that carry at least one of the
// requested genres and were released within the inclusive year range, plus
// the total match count.
func (r *Repo) ByGenreYearRange(ctx context.Context, c domain.GenreYearRange, offset int) domain.PageResult {
	yearPred := sq.Expr("f.release_year BETWEEN ? AND ?", c.YearFrom, c.YearTo)
	return r.searchByGenres(ctx, c.Genres, yearPred, offset)
}

// ByGenreExactYear returns one page of movies that carry at least one of the
// requested genres and were released exactly in the given year, plus the
// total match count.
func (r *Repo) ByGenreExactYear(ctx context.Context, c domain.GenreExactYear, offset int) domain.PageResult {
	return r.searchByGenres(ctx, c.Genres, sq.Eq{"f.release_year": c.Year}, offset)
}

// searchByGenres is the shared path of both genre modes. The count query and
// the page query are built from the same predicate so the total can never
// diverge from the pages it describes.
func (r *Repo) searchByGenres(ctx context.Context, genres []string, yearPred sq.Sqlizer, offset int) domain.PageResult {
	clean := domain.CleanGenres(genres)
	if len(clean) == 0 {
		return emptyPage()
	}

	pred := sq.And{sq.Eq{"c.name": clean}, yearPred}

	total, err := r.countMatches(ctx, pred)
	if err != nil {
		r.log.Warn("catalog: count query failed", "err", err)
		return emptyPage()
	}

	query := movieSelect().
		Join("film_category fc ON f.film_id = fc.film_id").
		Join("category c ON fc.category_id = c.category_id").
		LeftJoin("film_actor fa ON f.film_id = fa.film_id").
		LeftJoin("actor a ON fa.actor_id = a.actor_id").
		Where(pred).
		GroupBy("f.film_id").
		OrderBy("f.film_id").
		Limit(domain.PageSize).
		Offset(uint64(offset))

	movies, err := r.selectMovies(ctx, query)
	if err != nil {
		r.log.Warn("catalog: page query failed", "err", err)
		return emptyPage()
	}

	return domain.PageResult{Movies: movies, TotalCount: total}
}

// countMatches counts distinct matching movies ignoring pagination.
func (r *Repo) countMatches(ctx context.Context, pred sq.Sqlizer) (int, error) {
	matches := builder.Select("f.film_id").
		From("film f").
		Join("film_category fc ON f.film_id = fc.film_id").
		Join("category c ON fc.category_id = c.category_id").
		Where(pred).
		GroupBy("f.film_id")

	sqlStr, args, err := builder.Select("COUNT(*)").FromSelect(matches, "matches").ToSql()
	if err != nil {
		return 0, err
	}

	var total int
	if err := pgxscan.Get(ctx, r.q, &total, sqlStr, args...); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *Repo) selectMovies(ctx context.Context, query sq.SelectBuilder) ([]domain.Movie, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var movies []domain.Movie
	if err := pgxscan.Select(ctx, r.q, &movies, sqlStr, args...); err != nil {
		return nil, err
	}
	if movies == nil {
		movies = []domain.Movie{}
	}
	return movies, nil
}

// movieSelect is the column list shared by all page queries. Genre and actor
// names are collapsed into distinct, comma-joined strings.
func movieSelect() sq.SelectBuilder {
	return builder.Select(
		"f.title",
		"f.description",
		"f.release_year",
		"f.rating",
		"string_agg(DISTINCT c.name, ', ') AS genre",
		"string_agg(DISTINCT a.first_name || ' ' || a.last_name, ', ') AS actors",
	).From("film f")
}

func emptyPage() domain.PageResult {
	return domain.PageResult{Movies: []domain.Movie{}}
}
