package corpus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore is a PostgreSQL-backed Store implementation. The UNIQUE
// constraints on post_key and question_key are what make concurrent upserts
// safe and reruns idempotent.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a PostgreSQL-backed corpus store.
func NewPostgresStore(pool *pgxpool.Pool) (*PostgresStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}
	return &PostgresStore{pool: pool}, nil
}

// EnsureSchema creates the corpus tables if they do not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS posts (
			id            BIGSERIAL PRIMARY KEY,
			post_key      TEXT NOT NULL UNIQUE,
			book_title    TEXT NOT NULL,
			book_author   TEXT NOT NULL,
			chapter_title TEXT NOT NULL,
			chapter_id    TEXT NOT NULL,
			chapter_order INT NOT NULL,
			post_index    INT NOT NULL,
			content       TEXT NOT NULL,
			type          TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS questions (
			id            BIGSERIAL PRIMARY KEY,
			question_key  TEXT NOT NULL UNIQUE,
			post_key      TEXT NOT NULL,
			title         TEXT NOT NULL,
			question_text TEXT NOT NULL,
			book_title    TEXT NOT NULL,
			chapter_title TEXT NOT NULL,
			answers       JSONB NOT NULL,
			type          TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) UpsertPosts(ctx context.Context, posts []Post) (UpsertStats, error) {
	var stats UpsertStats
	for _, p := range posts {
		cmd, err := s.pool.Exec(ctx,
			`INSERT INTO posts (post_key, book_title, book_author, chapter_title, chapter_id, chapter_order, post_index, content, type)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			 ON CONFLICT (post_key) DO NOTHING`,
			p.Key,
			p.BookTitle,
			p.BookAuthor,
			p.ChapterTitle,
			p.ChapterID,
			p.ChapterOrder,
			p.PostIndex,
			p.Content,
			p.Type,
		)
		if err != nil {
			return stats, fmt.Errorf("insert post %s: %w", p.Key, err)
		}
		if cmd.RowsAffected() > 0 {
			stats.Inserted++
		} else {
			stats.Skipped++
		}
	}
	return stats, nil
}

func (s *PostgresStore) UpsertQuestions(ctx context.Context, questions []Question) (UpsertStats, error) {
	var stats UpsertStats
	for _, q := range questions {
		answers, err := json.Marshal(q.Answers)
		if err != nil {
			return stats, fmt.Errorf("encode answers for %s: %w", q.Key, err)
		}

		cmd, err := s.pool.Exec(ctx,
			`INSERT INTO questions (question_key, post_key, title, question_text, book_title, chapter_title, answers, type)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 ON CONFLICT (question_key) DO NOTHING`,
			q.Key,
			q.PostKey,
			q.Title,
			q.QuestionText,
			q.BookTitle,
			q.ChapterTitle,
			answers,
			q.Type,
		)
		if err != nil {
			return stats, fmt.Errorf("insert question %s: %w", q.Key, err)
		}
		if cmd.RowsAffected() > 0 {
			stats.Inserted++
		} else {
			stats.Skipped++
		}
	}
	return stats, nil
}
