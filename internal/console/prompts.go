package console

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/heartmarshall/moviesearch/internal/domain"
)

// keywordJunk matches everything except letters, digits, whitespace,
// underscores and hyphens. User keywords are stripped of it before hitting
// the catalog or the analytics log.
var keywordJunk = regexp.MustCompile(`[^\p{L}\p{N}\s_-]+`)

func sanitizeKeyword(raw string) string {
	return strings.TrimSpace(keywordJunk.ReplaceAllString(raw, ""))
}

// parseGenreSelection turns the user's numeric picks into genre names.
// "0" selects every genre; otherwise the input is a comma-separated list of
// positions in the displayed genre grid (1-based).
func parseGenreSelection(raw string, genres []domain.Genre) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("пустой ввод")
	}
	if raw == "0" {
		names := make([]string, len(genres))
		for i, g := range genres {
			names[i] = g.Name
		}
		return names, nil
	}

	var names []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%q не является номером жанра", part)
		}
		if n < 1 || n > len(genres) {
			return nil, fmt.Errorf("нет жанра с номером %d", n)
		}
		names = append(names, genres[n-1].Name)
	}
	return names, nil
}

// readLine returns the next line of user input, trimmed. EOF reads as an
// empty string, which every prompt treats as a decline.
func (c *Controller) readLine() string {
	if !c.in.Scan() {
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

func (c *Controller) prompt(text string) string {
	fmt.Fprint(c.out, text)
	return c.readLine()
}

// promptValidYear re-prompts until the user enters an integer within
// [minYear, maxYear].
func (c *Controller) promptValidYear(label string, minYear, maxYear int) int {
	for {
		raw := c.prompt(fmt.Sprintf("%s (%d–%d): ", label, minYear, maxYear))
		year, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(c.out, "Введите год числом.")
			continue
		}
		if year < minYear || year > maxYear {
			fmt.Fprintf(c.out, "Год должен быть в диапазоне %d–%d.\n", minYear, maxYear)
			continue
		}
		return year
	}
}

// promptNextPage asks whether to show the next page. Anything except an
// explicit yes reads as a decline.
func (c *Controller) promptNextPage() bool {
	answer := strings.ToLower(c.prompt("Показать следующую страницу? (y/n): "))
	return answer == "y" || answer == "д" || answer == "да" || answer == "yes"
}

// selectGenres shows the genre grid and re-prompts until a valid selection.
// An empty genre list (catalog unreachable) short-circuits to nil.
func (c *Controller) selectGenres(genres []domain.Genre) []string {
	if len(genres) == 0 {
		fmt.Fprintln(c.out, "Жанры недоступны, попробуйте позже.")
		return nil
	}

	fmt.Fprintln(c.out, "\nДоступные жанры:")
	fmt.Fprint(c.out, genreGrid(genres))

	for {
		raw := c.prompt("Выберите жанры через запятую (0 — все): ")
		names, err := parseGenreSelection(raw, genres)
		if err != nil {
			fmt.Fprintf(c.out, "Некорректный ввод: %v. Попробуйте ещё раз.\n", err)
			continue
		}
		return names
	}
}
