// Package corpus defines the durable output of the ingestion pipeline,
// learning posts and multiple-choice questions, along with their
// content-addressed keys and the stores that persist them.
package corpus

// TypeLearning is the feed type for generated posts.
const TypeLearning = "learning"

// TypeMultipleChoice is the feed type for generated questions.
const TypeMultipleChoice = "multiple-choice"

// Post is a short chapter-scoped excerpt of normalized book text, the atomic
// unit delivered in the learning feed. Content is at most 150 characters
// and ends on a sentence or word boundary.
type Post struct {
	Key          string `json:"key"`
	BookTitle    string `json:"bookTitle"`
	BookAuthor   string `json:"bookAuthor"`
	ChapterTitle string `json:"chapterTitle"`
	ChapterID    string `json:"chapterId"`
	ChapterOrder int    `json:"chapterOrder"`
	PostIndex    int    `json:"postIndex"`
	Content      string `json:"content"`
	Type         string `json:"type"`
}

// Answer is a single option of a multiple-choice question. Exactly one answer
// per question has IsCorrect set.
type Answer struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// Question is a comprehension question derived from a post. Answers holds
// exactly four options in randomized order; the multiset of texts is fixed
// per generation.
type Question struct {
	Key          string   `json:"key"`
	PostKey      string   `json:"postKey"`
	Title        string   `json:"title"`
	QuestionText string   `json:"questionText"`
	BookTitle    string   `json:"bookTitle"`
	ChapterTitle string   `json:"chapterTitle"`
	Answers      []Answer `json:"answers"`
	Type         string   `json:"type"`
}
