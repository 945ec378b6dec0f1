// Package pagination drives the shared fetch/render/continue loop used by
// every search mode.
package pagination

import (
	"context"

	"github.com/heartmarshall/moviesearch/internal/domain"
)

// FetchFunc loads one page at the given offset. Implementations are
// fail-soft: an unreachable store surfaces as an empty page, which
// terminates the loop.
type FetchFunc func(ctx context.Context, offset int) domain.PageResult

// Paginator fetches pages of domain.PageSize at increasing offsets until the
// store runs dry or the user declines to continue. Strictly sequential: one
// outstanding fetch at a time, blocking on the continue prompt between
// pages.
type Paginator struct {
	// Fetch loads a page. Required.
	Fetch FetchFunc
	// Render displays a non-empty page. pageNum is offset/PageSize + 1.
	Render func(page domain.PageResult, pageNum int)
	// Next asks whether to continue after a rendered page.
	Next func() bool
	// OnEmpty reports the terminal empty page. first distinguishes "no
	// results at all" from "no further results".
	OnEmpty func(first bool)
}

// Run executes the loop from startOffset and returns the number of fetch
// rounds performed. For a fetch that yields N matches and a user who always
// continues, that is ceil(N/PageSize) + 1.
func (p *Paginator) Run(ctx context.Context, startOffset int) int {
	offset := startOffset
	rounds := 0

	for {
		rounds++
		page := p.Fetch(ctx, offset)

		if len(page.Movies) == 0 {
			if p.OnEmpty != nil {
				p.OnEmpty(offset == 0)
			}
			return rounds
		}

		if p.Render != nil {
			p.Render(page, offset/domain.PageSize+1)
		}

		if p.Next == nil || !p.Next() {
			return rounds
		}
		offset += domain.PageSize
	}
}
