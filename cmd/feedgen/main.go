// Command feedgen runs the learning-feed ingestion pipeline: EPUB parsing,
// post generation, question synthesis, and idempotent database seeding.
package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/lifehandler/feedgen/internal/platform/config"
)

var CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`

	Parse struct{} `cmd:"" help:"Parse EPUB files into the parsed-books artifact"`

	Posts struct{} `cmd:"" help:"Generate learning posts from the parsed-books artifact"`

	Questions struct{} `cmd:"" help:"Generate multiple-choice questions from the posts artifact"`

	Seed struct{} `cmd:"" help:"Seed posts and questions into the database (idempotent)"`

	Run struct{} `cmd:"" help:"Run all pipeline stages in order"`

	Report struct {
		Output string `short:"o" help:"Report file path" default:"corpus-report.xlsx"`
	} `cmd:"" help:"Write a corpus summary workbook"`
}

func main() {
	kctx := kong.Parse(&CLI)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	setupLogging(cfg)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	app := &app{cfg: cfg}

	var runErr error
	switch kctx.Command() {
	case "parse":
		runErr = app.runParse()
	case "posts":
		runErr = app.runPosts()
	case "questions":
		runErr = app.runQuestions()
	case "seed":
		runErr = app.runSeed()
	case "run":
		runErr = app.runAll()
	case "report":
		runErr = app.runReport(CLI.Report.Output)
	}

	if runErr != nil {
		slog.Error("pipeline stage failed", "command", kctx.Command(), "error", runErr)
		os.Exit(1)
	}
}

func setupLogging(cfg *config.Config) {
	level := slog.LevelInfo
	if CLI.Verbose {
		level = slog.LevelDebug
	} else {
		switch strings.ToLower(cfg.Log.Level) {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Log.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
