package corpus

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// keyLen is the number of hex characters kept from the hash.
const keyLen = 16

// PostKey derives the content-addressed key for a post from its logical
// coordinates. The same coordinates always yield the same key, which is what
// makes re-ingestion idempotent.
func PostKey(bookTitle, chapterID string, postIndex int) string {
	return truncatedHash(fmt.Sprintf("%s-%s-%d", bookTitle, chapterID, postIndex))
}

// QuestionKey derives the content-addressed key for a question from its
// owning post's key and its index within that post.
func QuestionKey(postKey string, questionIndex int) string {
	return truncatedHash(fmt.Sprintf("%s-question-%d", postKey, questionIndex))
}

func truncatedHash(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])[:keyLen]
}
