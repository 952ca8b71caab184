// Package report writes a corpus summary workbook: per-book post and
// question counts for a generated corpus.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/lifehandler/feedgen/internal/corpus"
)

const sheet = "Summary"

// bookRow accumulates counts for one source book.
type bookRow struct {
	title     string
	author    string
	posts     int
	questions int
}

// Write produces an xlsx workbook at path summarizing the corpus, one row
// per book in first-appearance order plus a totals row.
func Write(path string, posts []corpus.Post, questions []corpus.Question) error {
	var order []string
	rows := make(map[string]*bookRow)

	for _, p := range posts {
		r, ok := rows[p.BookTitle]
		if !ok {
			r = &bookRow{title: p.BookTitle, author: p.BookAuthor}
			rows[p.BookTitle] = r
			order = append(order, p.BookTitle)
		}
		r.posts++
	}
	for _, q := range questions {
		r, ok := rows[q.BookTitle]
		if !ok {
			r = &bookRow{title: q.BookTitle}
			rows[q.BookTitle] = r
			order = append(order, q.BookTitle)
		}
		r.questions++
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := []any{"Book", "Author", "Posts", "Questions"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	totalPosts, totalQuestions := 0, 0
	for i, title := range order {
		r := rows[title]
		cell := fmt.Sprintf("A%d", i+2)
		row := []any{r.title, r.author, r.posts, r.questions}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row for %s: %w", r.title, err)
		}
		totalPosts += r.posts
		totalQuestions += r.questions
	}

	totalCell := fmt.Sprintf("A%d", len(order)+2)
	totals := []any{"Total", "", totalPosts, totalQuestions}
	if err := f.SetSheetRow(sheet, totalCell, &totals); err != nil {
		return fmt.Errorf("write totals: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}
