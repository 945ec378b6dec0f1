package console

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/heartmarshall/moviesearch/internal/domain"
)

const genreGridColumns = 4

// movieTable renders one page of search results. Row numbering is absolute,
// continuing across pages.
func movieTable(page domain.PageResult, startRow int) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"№", "Название", "Год", "Жанр", "Рейтинг", "Актёры"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Название", WidthMax: 30},
		{Name: "Актёры", WidthMax: 40, WidthMaxEnforcer: text.WrapSoft},
	})

	for i, m := range page.Movies {
		t.AppendRow(table.Row{
			startRow + i,
			m.Title,
			orDash(intText(m.ReleaseYear)),
			orDash(strText(m.Genre)),
			orDash(strText(m.Rating)),
			orDash(strText(m.Actors)),
		})
	}
	return t.Render() + "\n"
}

// genreGrid lays the genre list out in numbered columns so thirty-odd genres
// fit on one screen.
func genreGrid(genres []domain.Genre) string {
	var b strings.Builder
	for i, g := range genres {
		fmt.Fprintf(&b, "%3d. %-20s", i+1, g.Name)
		if (i+1)%genreGridColumns == 0 {
			b.WriteByte('\n')
		}
	}
	if len(genres)%genreGridColumns != 0 {
		b.WriteByte('\n')
	}
	return b.String()
}

// countTable renders a popularity top for the statistics screen.
func countTable(title string, counts []domain.SearchCount) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"№", "Запрос", "Раз"})
	for i, c := range counts {
		t.AppendRow(table.Row{i + 1, c.Name, c.Count})
	}
	return t.Render() + "\n"
}

// recentTable renders the latest recorded searches, newest first.
func recentTable(entries []domain.LogEntry) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetTitle("Последние поиски")
	t.AppendHeader(table.Row{"Когда", "Тип", "Параметры"})
	for _, e := range entries {
		t.AppendRow(table.Row{
			e.Timestamp.Local().Format("02.01.2006 15:04"),
			kindLabel(e.Kind),
			entryParams(e),
		})
	}
	return t.Render() + "\n"
}

func kindLabel(k domain.SearchKind) string {
	switch k {
	case domain.KindKeyword:
		return "ключевое слово"
	case domain.KindGenreYear:
		return "жанр и диапазон лет"
	case domain.KindGenreExactYear:
		return "жанр и год"
	default:
		return string(k)
	}
}

func entryParams(e domain.LogEntry) string {
	switch e.Kind {
	case domain.KindKeyword:
		return e.Keyword
	case domain.KindGenreYear:
		return fmt.Sprintf("%s, %s", strings.Join(e.Genres, ", "), e.Years)
	case domain.KindGenreExactYear:
		return fmt.Sprintf("%s, %d", strings.Join(e.Genres, ", "), e.Year)
	default:
		return ""
	}
}

func strText(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intText(p *int) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%d", *p)
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
