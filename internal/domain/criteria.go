package domain

// GenreYearRange searches movies that carry at least one of the genres and
// were released within [YearFrom, YearTo] inclusive.
type GenreYearRange struct {
	Genres   []string
	YearFrom int
	YearTo   int
}

// GenreExactYear searches movies that carry at least one of the genres and
// were released exactly in Year.
type GenreExactYear struct {
	Genres []string
	Year   int
}

// Validate checks the range invariant. It must be rejected before any query
// is issued.
func (c GenreYearRange) Validate() error {
	if c.YearFrom > c.YearTo {
		return ErrInvalidYearRange
	}
	return nil
}
