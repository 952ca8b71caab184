// Package book reads EPUB containers into normalized plain-text chapters.
package book

// Book is a parsed source document. Immutable once produced.
type Book struct {
	Title    string    `json:"title"`
	Author   string    `json:"author"`
	FilePath string    `json:"filePath"`
	Chapters []Chapter `json:"chapters"`
}

// Chapter is a single normalized chapter. Content is plain text with all
// markup stripped; chapters below the substance threshold never appear here.
type Chapter struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Order   int    `json:"order"`
	Content string `json:"content"`
}
