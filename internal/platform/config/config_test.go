package config_test

import (
	"testing"

	"github.com/lifehandler/feedgen/internal/platform/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database.URL == "" {
		t.Error("Database.URL should have a default")
	}
	if cfg.Database.MaxConns != 10 {
		t.Errorf("Database.MaxConns = %d, want 10", cfg.Database.MaxConns)
	}
	if cfg.Cache.URL != "" {
		t.Errorf("Cache.URL = %q, want empty by default", cfg.Cache.URL)
	}
	if cfg.Source.BooksDir != "./books" {
		t.Errorf("Source.BooksDir = %q, want ./books", cfg.Source.BooksDir)
	}
	if cfg.Source.DataDir != "./data" {
		t.Errorf("Source.DataDir = %q, want ./data", cfg.Source.DataDir)
	}
	if cfg.Pipeline.PostsPerChapter != 15 {
		t.Errorf("Pipeline.PostsPerChapter = %d, want 15", cfg.Pipeline.PostsPerChapter)
	}
	if cfg.Pipeline.QuestionsPerPost != 2 {
		t.Errorf("Pipeline.QuestionsPerPost = %d, want 2", cfg.Pipeline.QuestionsPerPost)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v, want info/json defaults", cfg.Log)
	}
	if cfg.HasCache() {
		t.Error("HasCache() = true, want false without a cache URL")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FEEDGEN_DATABASE_URL", "postgres://example/db")
	t.Setenv("FEEDGEN_DATABASE_MAX_CONNS", "25")
	t.Setenv("FEEDGEN_CACHE_URL", "redis://localhost:6379")
	t.Setenv("FEEDGEN_BOOKS_DIR", "/srv/books")
	t.Setenv("FEEDGEN_POSTS_PER_CHAPTER", "5")
	t.Setenv("FEEDGEN_LOG_FORMAT", "text")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database.URL != "postgres://example/db" {
		t.Errorf("Database.URL = %q", cfg.Database.URL)
	}
	if cfg.Database.MaxConns != 25 {
		t.Errorf("Database.MaxConns = %d, want 25", cfg.Database.MaxConns)
	}
	if !cfg.HasCache() {
		t.Error("HasCache() = false, want true with a cache URL")
	}
	if cfg.Source.BooksDir != "/srv/books" {
		t.Errorf("Source.BooksDir = %q", cfg.Source.BooksDir)
	}
	if cfg.Pipeline.PostsPerChapter != 5 {
		t.Errorf("Pipeline.PostsPerChapter = %d, want 5", cfg.Pipeline.PostsPerChapter)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want text", cfg.Log.Format)
	}
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("FEEDGEN_QUESTIONS_PER_POST", "lots")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Pipeline.QuestionsPerPost != 2 {
		t.Errorf("Pipeline.QuestionsPerPost = %d, want default 2 for unparsable value", cfg.Pipeline.QuestionsPerPost)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *config.Config) {}, false},
		{"zero posts per chapter", func(c *config.Config) { c.Pipeline.PostsPerChapter = 0 }, true},
		{"negative questions per post", func(c *config.Config) { c.Pipeline.QuestionsPerPost = -1 }, true},
		{"unknown log format", func(c *config.Config) { c.Log.Format = "xml" }, true},
		{"text log format", func(c *config.Config) { c.Log.Format = "text" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			tt.mutate(cfg)

			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
