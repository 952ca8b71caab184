package post

import (
	"github.com/lifehandler/feedgen/internal/book"
	"github.com/lifehandler/feedgen/internal/corpus"
)

// FromChapter packs the chapter's sentence stream into posts: one sentence
// per post, or two when they fit the budget together, up to postsPerChapter.
// Posts never span chapter boundaries.
func FromChapter(b book.Book, ch book.Chapter, postsPerChapter int) []corpus.Post {
	sentences := SplitSentences(ch.Content)

	var posts []corpus.Post
	postIndex := 0

	for i := 0; i < len(sentences) && postIndex < postsPerChapter; i++ {
		content := ensureTerminal(sentences[i])

		if runeLen(content) > Budget {
			content = TruncateToBudget(content, Budget)
		} else if i+1 < len(sentences) {
			next := ensureTerminal(sentences[i+1])
			if combined := content + " " + next; runeLen(combined) <= Budget {
				content = combined
				i++ // consumed the next sentence as well
			}
		}

		posts = append(posts, corpus.Post{
			Key:          corpus.PostKey(b.Title, ch.ID, postIndex),
			BookTitle:    b.Title,
			BookAuthor:   b.Author,
			ChapterTitle: ch.Title,
			ChapterID:    ch.ID,
			ChapterOrder: ch.Order,
			PostIndex:    postIndex,
			Content:      content,
			Type:         corpus.TypeLearning,
		})
		postIndex++
	}

	return posts
}

// FromBook generates posts for every chapter of a book in order.
func FromBook(b book.Book, postsPerChapter int) []corpus.Post {
	var posts []corpus.Post
	for _, ch := range b.Chapters {
		posts = append(posts, FromChapter(b, ch, postsPerChapter)...)
	}
	return posts
}
