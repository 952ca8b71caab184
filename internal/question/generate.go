package question

import (
	"fmt"
	"math/rand/v2"

	"github.com/lifehandler/feedgen/internal/corpus"
)

// DefaultQuestionsPerPost caps how many questions a single post yields.
const DefaultQuestionsPerPost = 2

// questionTextLen is how much of the concept is quoted in the question stem.
const questionTextLen = 100

// Generator turns posts into multiple-choice questions.
type Generator struct {
	vocab            Vocabulary
	synth            *Synthesizer
	rng              *rand.Rand
	questionsPerPost int
}

// NewGenerator creates a question generator. questionsPerPost values below
// one fall back to the default.
func NewGenerator(vocab Vocabulary, rng *rand.Rand, questionsPerPost int) *Generator {
	if questionsPerPost < 1 {
		questionsPerPost = DefaultQuestionsPerPost
	}
	return &Generator{
		vocab:            vocab,
		synth:            NewSynthesizer(vocab, rng),
		rng:              rng,
		questionsPerPost: questionsPerPost,
	}
}

// FromPost generates up to questionsPerPost questions for a post, one per
// extracted concept. Each question carries four answers in shuffled order
// with exactly one marked correct.
func (g *Generator) FromPost(p corpus.Post) []corpus.Question {
	concepts := g.vocab.ExtractConcepts(p.Content)

	n := min(g.questionsPerPost, len(concepts))
	questions := make([]corpus.Question, 0, n)

	for i := 0; i < n; i++ {
		concept := concepts[i]

		answers := []corpus.Answer{{Text: concept, IsCorrect: true}}
		for _, d := range g.synth.Distractors(concept) {
			answers = append(answers, corpus.Answer{Text: d})
		}
		g.rng.Shuffle(len(answers), func(a, b int) {
			answers[a], answers[b] = answers[b], answers[a]
		})

		questions = append(questions, corpus.Question{
			Key:          corpus.QuestionKey(p.Key, i),
			PostKey:      p.Key,
			Title:        "Question about " + p.ChapterTitle,
			QuestionText: fmt.Sprintf("Based on the content: \"%s...\", which statement is most accurate?", firstRunes(concept, questionTextLen)),
			BookTitle:    p.BookTitle,
			ChapterTitle: p.ChapterTitle,
			Answers:      answers,
			Type:         corpus.TypeMultipleChoice,
		})
	}

	return questions
}

// FromPosts generates questions for every post not already covered by the
// tracking set and returns the keys of the newly covered posts. Reruns skip
// posts that already have questions.
func (g *Generator) FromPosts(posts []corpus.Post, covered map[string]bool) ([]corpus.Question, []string) {
	var questions []corpus.Question
	var newKeys []string

	for _, p := range posts {
		if covered[p.Key] {
			continue
		}
		pq := g.FromPost(p)
		if len(pq) == 0 {
			continue
		}
		questions = append(questions, pq...)
		newKeys = append(newKeys, p.Key)
	}

	return questions, newKeys
}
