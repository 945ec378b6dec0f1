// Package redislog persists search analytics in Redis.
//
// Layout:
//   - moviesearch:dedup:<key>     — marker with a TTL equal to the dedup
//     window; its existence suppresses identical inserts.
//   - moviesearch:log:recent      — list of JSON-encoded entries, newest first.
//   - moviesearch:stats:keywords  — sorted set, keyword popularity.
//   - moviesearch:stats:genres    — sorted set, genre popularity (counted for
//     range-mode searches only, matching how the statistics were aggregated
//     historically).
package redislog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/moviesearch/internal/domain"
)

const (
	dedupPrefix = "moviesearch:dedup:"
	recentKey   = "moviesearch:log:recent"
	keywordsKey = "moviesearch:stats:keywords"
	genresKey   = "moviesearch:stats:genres"
)

// Store is the Redis-backed analytics log.
type Store struct {
	rdb    *redis.Client
	window time.Duration
}

// New creates a Store. window is the dedup window: how long an inserted
// entry suppresses identical ones.
func New(rdb *redis.Client, window time.Duration) *Store {
	return &Store{rdb: rdb, window: window}
}

// NewClient connects to Redis and verifies connectivity with a ping.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}

// FindRecent reports whether an entry with the same dedup key was inserted
// within the dedup window.
func (s *Store) FindRecent(ctx context.Context, key string) (bool, error) {
	n, err := s.rdb.Exists(ctx, dedupPrefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("dedup lookup: %w", err)
	}
	return n > 0, nil
}

// Insert stores one log entry: marks its dedup key for the window, prepends
// the entry to the recent list and bumps the popularity counters. The check
// in FindRecent and this write are not atomic across processes; a duplicate
// from a near-simultaneous writer is accepted.
func (s *Store) Insert(ctx context.Context, e domain.LogEntry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode log entry: %w", err)
	}

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, dedupPrefix+e.DedupKey(), "1", s.window)
		pipe.LPush(ctx, recentKey, payload)

		switch e.Kind {
		case domain.KindKeyword:
			pipe.ZIncrBy(ctx, keywordsKey, 1, e.Keyword)
		case domain.KindGenreYear:
			for _, g := range e.Genres {
				pipe.ZIncrBy(ctx, genresKey, 1, g)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("insert log entry: %w", err)
	}
	return nil
}

// TopKeywords returns the most popular keywords, most searched first.
func (s *Store) TopKeywords(ctx context.Context, limit int) ([]domain.SearchCount, error) {
	return s.top(ctx, keywordsKey, limit)
}

// TopGenres returns the most popular genres, most searched first.
func (s *Store) TopGenres(ctx context.Context, limit int) ([]domain.SearchCount, error) {
	return s.top(ctx, genresKey, limit)
}

func (s *Store) top(ctx context.Context, key string, limit int) ([]domain.SearchCount, error) {
	if limit <= 0 {
		return []domain.SearchCount{}, nil
	}

	members, err := s.rdb.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("top %s: %w", key, err)
	}

	counts := make([]domain.SearchCount, 0, len(members))
	for _, m := range members {
		name, ok := m.Member.(string)
		if !ok {
			continue
		}
		counts = append(counts, domain.SearchCount{Name: name, Count: int64(m.Score)})
	}
	return counts, nil
}

// Recent returns the latest entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]domain.LogEntry, error) {
	if limit <= 0 {
		return []domain.LogEntry{}, nil
	}

	raw, err := s.rdb.LRange(ctx, recentKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("recent entries: %w", err)
	}

	entries := make([]domain.LogEntry, 0, len(raw))
	for _, item := range raw {
		var e domain.LogEntry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			return nil, fmt.Errorf("decode log entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
