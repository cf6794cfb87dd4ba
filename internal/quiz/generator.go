// Package quiz implements multiple-choice quiz generation and the
// single in-memory quiz session the web handlers drive.
package quiz

import (
	"math/rand"
	"time"

	"brahmi-tutor/internal/script"
)

// Kind selects one of the three quiz styles. Values outside the known
// range behave as KindVocabulary; unrecognized kinds are never an error.
type Kind int

const (
	KindBrahmiToDevanagari Kind = 1
	KindSoundToBrahmi      Kind = 2
	KindVocabulary         Kind = 3
)

const (
	// QuestionCount is the number of questions drawn per quiz. The
	// letter table and vocabulary must both hold at least this many
	// entries.
	QuestionCount = 10
	// OptionCount is the number of answer options shown per question.
	OptionCount = 4
)

// Label is the human-readable quiz name. It doubles as the score
// store's quiz_kind key, so it must stay stable across releases.
func (k Kind) Label() string {
	switch k {
	case KindBrahmiToDevanagari:
		return "Brahmi to Devanagari"
	case KindSoundToBrahmi:
		return "Sound to Brahmi"
	default:
		return "Devanagari Vocabulary to Brahmi"
	}
}

// Question is a single prompt with its answer options. Answer always
// appears in Options. Options may contain duplicate renderings: the
// repair step overwrites one slot when the drawn options miss the
// answer, and it does not re-draw for uniqueness.
type Question struct {
	Prompt  string
	Options []string
	Answer  string
}

// Generator builds quizzes from the script reference tables.
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator returns a Generator using the given random source, or a
// time-seeded one when rnd is nil. Tests inject a fixed seed.
func NewGenerator(rnd *rand.Rand) *Generator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rnd: rnd}
}

// Generate produces QuestionCount questions for the given kind along
// with the kind's label. Source items are drawn without replacement;
// options are drawn independently per question.
func (g *Generator) Generate(kind Kind) ([]Question, string) {
	switch kind {
	case KindBrahmiToDevanagari:
		return g.letterQuiz(func(l script.Letter) (string, string) {
			return l.Brahmi, l.Devanagari
		}, devanagariPool()), kind.Label()
	case KindSoundToBrahmi:
		return g.letterQuiz(func(l script.Letter) (string, string) {
			return l.Sound, l.Brahmi
		}, brahmiPool()), kind.Label()
	default:
		return g.vocabularyQuiz(), KindVocabulary.Label()
	}
}

// letterQuiz draws distinct letters and maps each through pick to a
// (prompt, answer) pair, with options drawn from pool.
func (g *Generator) letterQuiz(pick func(script.Letter) (string, string), pool []string) []Question {
	letters := script.Letters()
	questions := make([]Question, 0, QuestionCount)
	for _, idx := range g.rnd.Perm(len(letters))[:QuestionCount] {
		prompt, answer := pick(letters[idx])
		q := Question{
			Prompt:  prompt,
			Options: g.drawOptions(pool),
			Answer:  answer,
		}
		g.repair(&q)
		questions = append(questions, q)
	}
	return questions
}

func (g *Generator) vocabularyQuiz() []Question {
	words := script.Words()
	renderings := script.Renderings()
	questions := make([]Question, 0, QuestionCount)
	for _, idx := range g.rnd.Perm(len(words))[:QuestionCount] {
		word := words[idx]
		q := Question{
			Prompt:  word,
			Options: g.drawOptions(renderings),
			Answer:  script.BrahmiForWord(word),
		}
		g.repair(&q)
		questions = append(questions, q)
	}
	return questions
}

// drawOptions picks OptionCount values from pool without replacement.
// The draw is independent of the question's answer.
func (g *Generator) drawOptions(pool []string) []string {
	options := make([]string, 0, OptionCount)
	for _, idx := range g.rnd.Perm(len(pool))[:OptionCount] {
		options = append(options, pool[idx])
	}
	return options
}

// repair guarantees the answer is displayed: when the drawn options
// miss it, one option at a uniformly random index is overwritten.
func (g *Generator) repair(q *Question) {
	for _, option := range q.Options {
		if option == q.Answer {
			return
		}
	}
	q.Options[g.rnd.Intn(len(q.Options))] = q.Answer
}

func devanagariPool() []string {
	letters := script.Letters()
	pool := make([]string, len(letters))
	for i, l := range letters {
		pool[i] = l.Devanagari
	}
	return pool
}

func brahmiPool() []string {
	letters := script.Letters()
	pool := make([]string, len(letters))
	for i, l := range letters {
		pool[i] = l.Brahmi
	}
	return pool
}
