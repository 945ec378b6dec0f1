// Package domain contains the core types of the movie search application:
// catalog records, search criteria, analytics log entries and the
// normalization rules shared by the query and logging paths.
package domain

// PageSize is the fixed number of movies per result page.
const PageSize = 10

// Movie is a single read-only catalog record as returned by search queries.
// Genre and Actors are aggregated fields: comma-joined, duplicate-free
// strings built from the M2M relations. Ordering inside the joined string is
// store-dependent and not guaranteed.
type Movie struct {
	Title       string  `db:"title"`
	Description *string `db:"description"`
	ReleaseYear *int    `db:"release_year"`
	Rating      *string `db:"rating"`
	Genre       *string `db:"genre"`
	Actors      *string `db:"actors"`
}

// PageResult is one page of search results plus the full match count.
// TotalCount ignores pagination; for keyword searches it degrades to
// len(Movies) because that mode issues no count query.
type PageResult struct {
	Movies     []Movie
	TotalCount int
}

// Genre is a reference-data entry: a catalog genre that is associated with
// at least one movie.
type Genre struct {
	ID   int    `db:"category_id"`
	Name string `db:"name"`
}
