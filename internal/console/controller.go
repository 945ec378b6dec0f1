// Package console implements the interactive terminal frontend.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/heartmarshall/moviesearch/internal/domain"
	"github.com/heartmarshall/moviesearch/internal/pagination"
)

const statsTop = 5

// Searcher runs catalog queries and records them. Implemented by the search
// facade.
type Searcher interface {
	ByKeyword(ctx context.Context, keyword string, offset int, logged bool) domain.PageResult
	ByGenreYearRange(ctx context.Context, c domain.GenreYearRange, offset int, logged bool) domain.PageResult
	ByGenreExactYear(ctx context.Context, c domain.GenreExactYear, offset int, logged bool) domain.PageResult
}

// Stats serves the statistics screen. Implemented by searchlog.Service.
type Stats interface {
	TopKeywords(ctx context.Context, limit int) ([]domain.SearchCount, error)
	TopGenres(ctx context.Context, limit int) ([]domain.SearchCount, error)
	Recent(ctx context.Context, limit int) ([]domain.LogEntry, error)
}

// Reference provides the genre list and the catalog's year bounds for the
// interactive prompts. Implemented by catalog.Repo.
type Reference interface {
	YearRange(ctx context.Context) (int, int)
	ListGenres(ctx context.Context) []domain.Genre
}

// Controller owns the terminal session: the main menu, the per-mode prompt
// flows and the pagination loops. Strictly sequential, one interaction at a
// time.
type Controller struct {
	search Searcher
	stats  Stats
	ref    Reference
	in     *bufio.Scanner
	out    io.Writer
	log    *slog.Logger
	sleep  func(time.Duration)
}

func New(search Searcher, stats Stats, ref Reference, in io.Reader, out io.Writer, log *slog.Logger) *Controller {
	return &Controller{
		search: search,
		stats:  stats,
		ref:    ref,
		in:     bufio.NewScanner(in),
		out:    out,
		log:    log,
		sleep:  time.Sleep,
	}
}

// Run drives the main menu until the user exits, input ends or the context
// is cancelled.
func (c *Controller) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "🎬 Добро пожаловать в МувиПоиск!")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(c.out, "\nГлавное меню:")
		fmt.Fprintln(c.out, "  1. Поиск по ключевому слову")
		fmt.Fprintln(c.out, "  2. Поиск по жанру и году")
		fmt.Fprintln(c.out, "  3. Статистика поисков")
		fmt.Fprintln(c.out, "  4. Выход")

		switch c.prompt("Выберите пункт: ") {
		case "1":
			c.handleKeywordSearch(ctx)
		case "2":
			c.handleGenreYearSearch(ctx)
		case "3":
			c.handleStatistics(ctx)
		case "4", "":
			fmt.Fprintln(c.out, "До встречи! 👋")
			return nil
		default:
			fmt.Fprintln(c.out, "Нет такого пункта меню.")
		}
	}
}

func (c *Controller) handleKeywordSearch(ctx context.Context) {
	keyword := sanitizeKeyword(c.prompt("Введите ключевое слово: "))
	if keyword == "" {
		fmt.Fprintln(c.out, "Ключевое слово не может быть пустым.")
		return
	}

	c.paginate(ctx, func(ctx context.Context, offset int, logged bool) domain.PageResult {
		return c.search.ByKeyword(ctx, keyword, offset, logged)
	})
}

// handleGenreYearSearch covers both year modes: an inclusive range and an
// exact year.
func (c *Controller) handleGenreYearSearch(ctx context.Context) {
	names := c.selectGenres(c.ref.ListGenres(ctx))
	if names == nil {
		return
	}

	minYear, maxYear := c.ref.YearRange(ctx)

	var exact bool
	switch c.prompt("Поиск: 1 — диапазон лет, 2 — точный год: ") {
	case "1":
		exact = false
	case "2":
		exact = true
	default:
		fmt.Fprintln(c.out, "Нет такого варианта.")
		return
	}

	if exact {
		year := c.promptValidYear("Год выпуска", minYear, maxYear)
		criteria := domain.GenreExactYear{Genres: names, Year: year}
		c.paginate(ctx, func(ctx context.Context, offset int, logged bool) domain.PageResult {
			return c.search.ByGenreExactYear(ctx, criteria, offset, logged)
		})
		return
	}

	yearFrom := c.promptValidYear("Год с", minYear, maxYear)
	yearTo := c.promptValidYear("Год по", minYear, maxYear)

	criteria := domain.GenreYearRange{Genres: names, YearFrom: yearFrom, YearTo: yearTo}
	if err := criteria.Validate(); err != nil {
		fmt.Fprintln(c.out, "Начальный год не может быть больше конечного.")
		return
	}

	c.paginate(ctx, func(ctx context.Context, offset int, logged bool) domain.PageResult {
		return c.search.ByGenreYearRange(ctx, criteria, offset, logged)
	})
}

// paginate runs a search through the shared fetch/render/continue loop. Only
// the first fetch of the session records analytics; the match total is
// announced once, alongside the first non-empty page.
func (c *Controller) paginate(ctx context.Context, fetch func(ctx context.Context, offset int, logged bool) domain.PageResult) {
	logged := false

	p := &pagination.Paginator{
		Fetch: func(ctx context.Context, offset int) domain.PageResult {
			c.showLoading("Ищем")
			page := fetch(ctx, offset, logged)
			if !logged && len(page.Movies) > 0 {
				celebrate(c.out, page.TotalCount)
			}
			logged = true
			return page
		},
		Render: func(page domain.PageResult, pageNum int) {
			fmt.Fprintf(c.out, "Страница %d\n", pageNum)
			fmt.Fprint(c.out, movieTable(page, (pageNum-1)*domain.PageSize+1))
		},
		Next: c.promptNextPage,
		OnEmpty: func(first bool) {
			if first {
				fmt.Fprintln(c.out, "Ничего не найдено. 😕")
			} else {
				fmt.Fprintln(c.out, "Больше результатов нет.")
			}
		},
	}

	p.Run(ctx, 0)
}

func (c *Controller) handleStatistics(ctx context.Context) {
	keywords, err := c.stats.TopKeywords(ctx, statsTop)
	if err != nil {
		c.log.Warn("statistics: top keywords failed", "err", err)
		fmt.Fprintln(c.out, "Статистика временно недоступна.")
		return
	}
	genres, err := c.stats.TopGenres(ctx, statsTop)
	if err != nil {
		c.log.Warn("statistics: top genres failed", "err", err)
		fmt.Fprintln(c.out, "Статистика временно недоступна.")
		return
	}
	recent, err := c.stats.Recent(ctx, statsTop)
	if err != nil {
		c.log.Warn("statistics: recent searches failed", "err", err)
		fmt.Fprintln(c.out, "Статистика временно недоступна.")
		return
	}

	if len(keywords) == 0 && len(genres) == 0 && len(recent) == 0 {
		fmt.Fprintln(c.out, "Статистика пока пуста — выполните первый поиск!")
		return
	}

	fmt.Fprint(c.out, countTable("Популярные ключевые слова", keywords))
	fmt.Fprint(c.out, countTable("Популярные жанры", genres))
	fmt.Fprint(c.out, recentTable(recent))
}
