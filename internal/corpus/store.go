package corpus

import (
	"context"
	"sync"
)

// UpsertStats reports how a batch landed: rows newly written vs rows skipped
// because their key already existed. A duplicate key is the expected
// idempotence signal, never an error.
type UpsertStats struct {
	Inserted int
	Skipped  int
}

// Store persists posts and questions with insert-or-skip semantics keyed on
// the content-addressed key.
type Store interface {
	UpsertPosts(ctx context.Context, posts []Post) (UpsertStats, error)
	UpsertQuestions(ctx context.Context, questions []Question) (UpsertStats, error)
}

// MemoryStore is an in-memory Store implementation for tests.
type MemoryStore struct {
	posts     map[string]Post
	questions map[string]Question
	mu        sync.RWMutex
}

// NewMemoryStore creates a new in-memory corpus store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		posts:     make(map[string]Post),
		questions: make(map[string]Question),
	}
}

func (s *MemoryStore) UpsertPosts(ctx context.Context, posts []Post) (UpsertStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stats UpsertStats
	for _, p := range posts {
		if _, ok := s.posts[p.Key]; ok {
			stats.Skipped++
			continue
		}
		s.posts[p.Key] = p
		stats.Inserted++
	}
	return stats, nil
}

func (s *MemoryStore) UpsertQuestions(ctx context.Context, questions []Question) (UpsertStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stats UpsertStats
	for _, q := range questions {
		if _, ok := s.questions[q.Key]; ok {
			stats.Skipped++
			continue
		}
		s.questions[q.Key] = q
		stats.Inserted++
	}
	return stats, nil
}

// PostCount returns how many posts the store holds.
func (s *MemoryStore) PostCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}

// QuestionCount returns how many questions the store holds.
func (s *MemoryStore) QuestionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.questions)
}
