// Package artifact reads and writes the durable JSON artifacts passed
// between pipeline stages, validating them against embedded JSON Schemas.
package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/lifehandler/feedgen/internal/book"
	"github.com/lifehandler/feedgen/internal/corpus"
)

// Artifact file names under the data directory.
const (
	BooksFile     = "parsed-books.json"
	PostsFile     = "posts.json"
	QuestionsFile = "questions.json"
	TrackingFile  = "questions-tracking.json"
)

// ErrMissing reports that a required upstream artifact does not exist.
// Callers name the prerequisite stage in their diagnostic.
var ErrMissing = errors.New("artifact missing")

// Dir resolves artifact file names against a data directory.
type Dir struct {
	root string
}

// NewDir creates the data directory if needed and returns a handle to it.
func NewDir(root string) (*Dir, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Dir{root: root}, nil
}

// Path returns the absolute location of a named artifact.
func (d *Dir) Path(name string) string {
	return filepath.Join(d.root, name)
}

// WriteJSON writes v as indented JSON to the named artifact.
func (d *Dir) WriteJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.WriteFile(d.Path(name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// ReadBooks loads and validates the parsed-books artifact.
func (d *Dir) ReadBooks() ([]book.Book, error) {
	var books []book.Book
	if err := d.readValidated(BooksFile, booksSchema, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// ReadPosts loads and validates the posts artifact.
func (d *Dir) ReadPosts() ([]corpus.Post, error) {
	var posts []corpus.Post
	if err := d.readValidated(PostsFile, postsSchema, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// ReadQuestions loads and validates the questions artifact. A missing file
// yields an empty slice: the questions stage appends across reruns.
func (d *Dir) ReadQuestions() ([]corpus.Question, error) {
	var questions []corpus.Question
	err := d.readValidated(QuestionsFile, questionsSchema, &questions)
	if errors.Is(err, ErrMissing) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (d *Dir) readValidated(name, schema string, v any) error {
	data, err := os.ReadFile(d.Path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", d.Path(name), ErrMissing)
		}
		return fmt.Errorf("read %s: %w", name, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("validate %s: %w", name, err)
	}
	if !result.Valid() {
		var b strings.Builder
		for i, desc := range result.Errors() {
			if i > 0 {
				b.WriteString("; ")
			}
			b.WriteString(desc.String())
		}
		return fmt.Errorf("%s failed schema validation: %s", name, b.String())
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
