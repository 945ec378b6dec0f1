package redislog

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/moviesearch/internal/domain"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(client, 5*time.Second), mr
}

func TestStore_InsertAndFindRecent(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	e := domain.LogEntry{Kind: domain.KindKeyword, Keyword: "matrix", Timestamp: time.Now().UTC()}

	found, err := store.FindRecent(ctx, e.DedupKey())
	if err != nil {
		t.Fatalf("FindRecent: %v", err)
	}
	if found {
		t.Error("FindRecent returned true before any insert")
	}

	if err := store.Insert(ctx, e); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	found, err = store.FindRecent(ctx, e.DedupKey())
	if err != nil {
		t.Fatalf("FindRecent: %v", err)
	}
	if !found {
		t.Error("FindRecent returned false inside the dedup window")
	}

	// Window expiry frees the key again.
	mr.FastForward(6 * time.Second)

	found, err = store.FindRecent(ctx, e.DedupKey())
	if err != nil {
		t.Fatalf("FindRecent: %v", err)
	}
	if found {
		t.Error("FindRecent returned true after the window expired")
	}
}

func TestStore_Recent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first := domain.LogEntry{Kind: domain.KindKeyword, Keyword: "alien", Timestamp: time.Now().UTC()}
	second := domain.LogEntry{
		Kind:      domain.KindGenreYear,
		Genres:    []string{"Action", "Comedy"},
		Years:     "2000–2010",
		Timestamp: time.Now().UTC(),
	}

	if err := store.Insert(ctx, first); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := store.Insert(ctx, second); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	entries, err := store.Recent(ctx, 5)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	// Newest first.
	if entries[0].Kind != domain.KindGenreYear || entries[0].Years != "2000–2010" {
		t.Errorf("entries[0] = %+v, want the genre_year entry", entries[0])
	}
	if entries[1].Keyword != "alien" {
		t.Errorf("entries[1].Keyword = %q, want %q", entries[1].Keyword, "alien")
	}
	if entries[0].ID == entries[1].ID {
		t.Error("entries must get distinct IDs")
	}
}

func TestStore_TopKeywords(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	for _, kw := range []string{"matrix", "matrix", "alien"} {
		e := domain.LogEntry{Kind: domain.KindKeyword, Keyword: kw, Timestamp: time.Now().UTC()}
		if err := store.Insert(ctx, e); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	top, err := store.TopKeywords(ctx, 5)
	if err != nil {
		t.Fatalf("TopKeywords: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("got %d keywords, want 2", len(top))
	}
	if top[0].Name != "matrix" || top[0].Count != 2 {
		t.Errorf("top[0] = %+v, want {matrix 2}", top[0])
	}
	if top[1].Name != "alien" || top[1].Count != 1 {
		t.Errorf("top[1] = %+v, want {alien 1}", top[1])
	}
}

func TestStore_TopGenres_RangeModeOnly(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	rangeEntry := domain.LogEntry{
		Kind:      domain.KindGenreYear,
		Genres:    []string{"Action", "Comedy"},
		Years:     "2000–2010",
		Timestamp: time.Now().UTC(),
	}
	exactEntry := domain.LogEntry{
		Kind:      domain.KindGenreExactYear,
		Genres:    []string{"Horror"},
		Year:      1995,
		Timestamp: time.Now().UTC(),
	}

	if err := store.Insert(ctx, rangeEntry); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := store.Insert(ctx, exactEntry); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	top, err := store.TopGenres(ctx, 5)
	if err != nil {
		t.Fatalf("TopGenres: %v", err)
	}
	// Exact-year searches do not feed the genre counters.
	if len(top) != 2 {
		t.Fatalf("got %d genres, want 2: %+v", len(top), top)
	}
	for _, c := range top {
		if c.Name == "Horror" {
			t.Error("exact-year genres must not be counted")
		}
	}
}

func TestStore_EmptyReads(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	entries, err := store.Recent(ctx, 5)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}

	top, err := store.TopKeywords(ctx, 5)
	if err != nil {
		t.Fatalf("TopKeywords: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("got %d keywords, want 0", len(top))
	}
}
