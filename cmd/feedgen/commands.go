package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/lifehandler/feedgen/internal/artifact"
	"github.com/lifehandler/feedgen/internal/book"
	"github.com/lifehandler/feedgen/internal/corpus"
	"github.com/lifehandler/feedgen/internal/platform/cache"
	"github.com/lifehandler/feedgen/internal/platform/config"
	"github.com/lifehandler/feedgen/internal/platform/database"
	"github.com/lifehandler/feedgen/internal/post"
	"github.com/lifehandler/feedgen/internal/question"
	"github.com/lifehandler/feedgen/internal/report"
)

// trackingSetKey is the Redis set holding covered post keys when a cache is
// configured.
const trackingSetKey = "feedgen:questions:generated-for"

type app struct {
	cfg *config.Config
}

func (a *app) dataDir() (*artifact.Dir, error) {
	return artifact.NewDir(a.cfg.Source.DataDir)
}

// runParse extracts every EPUB in the books directory into the parsed-books
// artifact.
func (a *app) runParse() error {
	dir, err := a.dataDir()
	if err != nil {
		return err
	}

	books, err := book.ParseDir(a.cfg.Source.BooksDir)
	if err != nil {
		return err
	}

	if err := dir.WriteJSON(artifact.BooksFile, books); err != nil {
		return err
	}

	slog.Info("parsed books", "books", len(books), "artifact", dir.Path(artifact.BooksFile))
	return nil
}

// runPosts turns the parsed-books artifact into the posts artifact.
func (a *app) runPosts() error {
	dir, err := a.dataDir()
	if err != nil {
		return err
	}

	books, err := dir.ReadBooks()
	if err != nil {
		return stageHint(err, "parse")
	}

	var posts []corpus.Post
	for _, b := range books {
		bookPosts := post.FromBook(b, a.cfg.Pipeline.PostsPerChapter)
		slog.Info("generated posts", "book", b.Title, "chapters", len(b.Chapters), "posts", len(bookPosts))
		posts = append(posts, bookPosts...)
	}

	if err := dir.WriteJSON(artifact.PostsFile, posts); err != nil {
		return err
	}

	slog.Info("posts artifact written", "posts", len(posts), "artifact", dir.Path(artifact.PostsFile))
	return nil
}

// runQuestions generates questions for posts not yet covered by the tracking
// set and appends them to the questions artifact.
func (a *app) runQuestions() error {
	ctx := context.Background()

	dir, err := a.dataDir()
	if err != nil {
		return err
	}

	posts, err := dir.ReadPosts()
	if err != nil {
		return stageHint(err, "posts")
	}

	vocab, err := a.loadVocabulary()
	if err != nil {
		return err
	}

	tracker, closeTracker, err := a.newTracker(ctx, dir)
	if err != nil {
		return err
	}
	defer closeTracker()

	covered, err := tracker.Covered(ctx)
	if err != nil {
		return err
	}

	existing, err := dir.ReadQuestions()
	if err != nil {
		return err
	}

	gen := question.NewGenerator(vocab, newRNG(), a.cfg.Pipeline.QuestionsPerPost)
	generated, newKeys := gen.FromPosts(posts, covered)

	all := append(existing, generated...)
	if err := dir.WriteJSON(artifact.QuestionsFile, all); err != nil {
		return err
	}
	if err := tracker.Add(ctx, newKeys); err != nil {
		return err
	}

	slog.Info("questions artifact written",
		"new_questions", len(generated),
		"total_questions", len(all),
		"newly_covered_posts", len(newKeys),
		"already_covered_posts", len(covered),
	)
	return nil
}

// runSeed upserts the posts and questions artifacts into PostgreSQL.
// Duplicate keys are counted as skipped; any other storage failure aborts
// the run.
func (a *app) runSeed() error {
	ctx := context.Background()

	dir, err := a.dataDir()
	if err != nil {
		return err
	}

	posts, err := dir.ReadPosts()
	if err != nil {
		return stageHint(err, "posts")
	}
	questions, err := dir.ReadQuestions()
	if err != nil {
		return err
	}

	db, err := database.New(ctx, a.cfg.Database.URL, a.cfg.Database.MaxConns, a.cfg.Database.MinConns)
	if err != nil {
		return err
	}
	defer db.Close()

	store, err := corpus.NewPostgresStore(db.Pool)
	if err != nil {
		return err
	}
	if err := store.EnsureSchema(ctx); err != nil {
		return err
	}

	postStats, err := store.UpsertPosts(ctx, posts)
	if err != nil {
		return fmt.Errorf("seeding posts: %w", err)
	}
	slog.Info("seeded posts", "inserted", postStats.Inserted, "skipped", postStats.Skipped)

	questionStats, err := store.UpsertQuestions(ctx, questions)
	if err != nil {
		return fmt.Errorf("seeding questions: %w", err)
	}
	slog.Info("seeded questions", "inserted", questionStats.Inserted, "skipped", questionStats.Skipped)

	return nil
}

// runAll executes every stage in pipeline order.
func (a *app) runAll() error {
	if err := a.runParse(); err != nil {
		return err
	}
	if err := a.runPosts(); err != nil {
		return err
	}
	if err := a.runQuestions(); err != nil {
		return err
	}
	return a.runSeed()
}

// runReport summarizes the current artifacts into a workbook.
func (a *app) runReport(output string) error {
	dir, err := a.dataDir()
	if err != nil {
		return err
	}

	posts, err := dir.ReadPosts()
	if err != nil {
		return stageHint(err, "posts")
	}
	questions, err := dir.ReadQuestions()
	if err != nil {
		return err
	}

	if err := report.Write(output, posts, questions); err != nil {
		return err
	}

	slog.Info("report written", "path", output, "posts", len(posts), "questions", len(questions))
	return nil
}

func (a *app) loadVocabulary() (question.Vocabulary, error) {
	if a.cfg.Pipeline.VocabularyPath == "" {
		return question.DefaultVocabulary(), nil
	}
	return question.LoadVocabulary(a.cfg.Pipeline.VocabularyPath)
}

// newTracker picks the tracking backend: Redis when a cache URL is
// configured, the JSON artifact otherwise.
func (a *app) newTracker(ctx context.Context, dir *artifact.Dir) (corpus.Tracker, func(), error) {
	if !a.cfg.HasCache() {
		return corpus.NewFileTracker(dir.Path(artifact.TrackingFile)), func() {}, nil
	}

	c, err := cache.New(ctx, a.cfg.Cache.URL)
	if err != nil {
		return nil, nil, err
	}
	return corpus.NewRedisTracker(c.Client, trackingSetKey), func() { c.Close() }, nil
}

// stageHint adds the prerequisite stage to a missing-artifact error.
func stageHint(err error, stage string) error {
	if errors.Is(err, artifact.ErrMissing) {
		return fmt.Errorf("%w (run 'feedgen %s' first)", err, stage)
	}
	return err
}

func newRNG() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
