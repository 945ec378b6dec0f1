package domain

import "errors"

var (
	// ErrInvalidYearRange means year_from > year_to was requested.
	ErrInvalidYearRange = errors.New("year_from is greater than year_to")
)
