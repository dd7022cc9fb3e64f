// Package memory is an in-process Resource Store used when STORE_DRIVER=memory and in tests.
// It mirrors the Mongo store's semantics: unique keys, case-insensitive filters,
// newest-first ordering.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/elevatescholar/scholarship-api/internal/domain"
)

type Store struct {
	mu           sync.RWMutex
	scholarships map[string]domain.Scholarship
	users        map[string]domain.User
	reviews      map[string]domain.Review
	applications map[string]domain.Application
}

func New() *Store {
	return &Store{
		scholarships: map[string]domain.Scholarship{},
		users:        map[string]domain.User{},
		reviews:      map[string]domain.Review{},
		applications: map[string]domain.Application{},
	}
}

func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

func (s *Store) Scholarships() *ScholarshipRepo { return &ScholarshipRepo{s: s} }
func (s *Store) Users() *UserRepo               { return &UserRepo{s: s} }
func (s *Store) Reviews() *ReviewRepo           { return &ReviewRepo{s: s} }
func (s *Store) Applications() *ApplicationRepo { return &ApplicationRepo{s: s} }

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func capped[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

func sortNewestFirst[T any](items []T, key func(T) int64) {
	sort.SliceStable(items, func(i, j int) bool { return key(items[i]) > key(items[j]) })
}
