package book

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ParseDir reads every .epub file in dir. A book that fails to parse is
// logged and skipped; the rest of the directory is still processed.
func ParseDir(dir string) ([]Book, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read books directory: %w", err)
	}

	var books []Book
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".epub") {
			continue
		}

		filePath := filepath.Join(dir, entry.Name())
		b, err := ReadEPUB(filePath)
		if err != nil {
			slog.Warn("skipping unparseable book", "file", entry.Name(), "error", err)
			continue
		}

		slog.Info("parsed book", "title", b.Title, "chapters", len(b.Chapters))
		books = append(books, *b)
	}

	return books, nil
}
