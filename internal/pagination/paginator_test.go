package pagination

import (
	"context"
	"reflect"
	"testing"

	"github.com/heartmarshall/moviesearch/internal/domain"
)

// fetchTotal simulates a catalog holding total matching movies.
func fetchTotal(total int) FetchFunc {
	return func(_ context.Context, offset int) domain.PageResult {
		remaining := total - offset
		if remaining <= 0 {
			return domain.PageResult{Movies: []domain.Movie{}}
		}
		n := remaining
		if n > domain.PageSize {
			n = domain.PageSize
		}
		return domain.PageResult{Movies: make([]domain.Movie, n), TotalCount: total}
	}
}

func TestPaginator_TerminatesAfterAllPages(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		wantRounds int
		wantPages  []int
		wantSizes  []int
	}{
		{
			name:       "15 matches: 10 + 5 + empty",
			total:      15,
			wantRounds: 3,
			wantPages:  []int{1, 2},
			wantSizes:  []int{10, 5},
		},
		{
			name:       "exactly one page still prompts and fetches again",
			total:      10,
			wantRounds: 2,
			wantPages:  []int{1},
			wantSizes:  []int{10},
		},
		{
			name:       "single short page",
			total:      3,
			wantRounds: 2,
			wantPages:  []int{1},
			wantSizes:  []int{3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var pages, sizes []int
			var emptyFirst *bool

			p := &Paginator{
				Fetch: fetchTotal(tt.total),
				Render: func(page domain.PageResult, pageNum int) {
					pages = append(pages, pageNum)
					sizes = append(sizes, len(page.Movies))
				},
				Next: func() bool { return true },
				OnEmpty: func(first bool) {
					emptyFirst = &first
				},
			}

			rounds := p.Run(context.Background(), 0)

			if rounds != tt.wantRounds {
				t.Errorf("rounds = %d, want %d", rounds, tt.wantRounds)
			}
			if !reflect.DeepEqual(pages, tt.wantPages) {
				t.Errorf("page numbers = %v, want %v", pages, tt.wantPages)
			}
			if !reflect.DeepEqual(sizes, tt.wantSizes) {
				t.Errorf("page sizes = %v, want %v", sizes, tt.wantSizes)
			}
			if emptyFirst == nil {
				t.Fatal("OnEmpty was not called")
			}
			if *emptyFirst {
				t.Error("OnEmpty(first=true) after rendered pages; want first=false")
			}
		})
	}
}

func TestPaginator_NoResultsAtAll(t *testing.T) {
	var emptyFirst *bool
	rendered := false

	p := &Paginator{
		Fetch:   fetchTotal(0),
		Render:  func(domain.PageResult, int) { rendered = true },
		Next:    func() bool { return true },
		OnEmpty: func(first bool) { emptyFirst = &first },
	}

	rounds := p.Run(context.Background(), 0)

	if rounds != 1 {
		t.Errorf("rounds = %d, want 1", rounds)
	}
	if rendered {
		t.Error("Render called for an empty result")
	}
	if emptyFirst == nil || !*emptyFirst {
		t.Error("OnEmpty must report first=true at offset 0")
	}
}

func TestPaginator_UserDeclines(t *testing.T) {
	fetches := 0
	p := &Paginator{
		Fetch: func(ctx context.Context, offset int) domain.PageResult {
			fetches++
			return fetchTotal(100)(ctx, offset)
		},
		Render: func(domain.PageResult, int) {},
		Next:   func() bool { return false },
	}

	rounds := p.Run(context.Background(), 0)

	if rounds != 1 || fetches != 1 {
		t.Errorf("rounds = %d, fetches = %d; want 1, 1", rounds, fetches)
	}
}

func TestPaginator_StartOffset(t *testing.T) {
	var pages []int
	var emptyFirst *bool

	p := &Paginator{
		Fetch:   fetchTotal(25),
		Render:  func(_ domain.PageResult, pageNum int) { pages = append(pages, pageNum) },
		Next:    func() bool { return true },
		OnEmpty: func(first bool) { emptyFirst = &first },
	}

	p.Run(context.Background(), 20)

	// Page numbering follows the absolute offset.
	if !reflect.DeepEqual(pages, []int{3}) {
		t.Errorf("page numbers = %v, want [3]", pages)
	}
	if emptyFirst == nil || *emptyFirst {
		t.Error("an empty page at offset > 0 must report first=false")
	}
}
