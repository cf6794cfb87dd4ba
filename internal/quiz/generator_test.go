package quiz

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateShape(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(1)))

	for _, kind := range []Kind{KindBrahmiToDevanagari, KindSoundToBrahmi, KindVocabulary, Kind(99)} {
		t.Run(fmt.Sprintf("kind_%d", kind), func(t *testing.T) {
			// No seeding contract, so check the invariants over many draws.
			for trial := 0; trial < 50; trial++ {
				questions, label := gen.Generate(kind)
				require.Len(t, questions, QuestionCount)
				require.NotEmpty(t, label)
				for _, q := range questions {
					require.Len(t, q.Options, OptionCount)
					assert.Contains(t, q.Options, q.Answer, "answer must survive the repair step")
					assert.NotEmpty(t, q.Prompt)
				}
			}
		})
	}
}

func TestGenerateDrawsDistinctSources(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(7)))

	for _, kind := range []Kind{KindBrahmiToDevanagari, KindSoundToBrahmi, KindVocabulary} {
		for trial := 0; trial < 50; trial++ {
			questions, _ := gen.Generate(kind)
			// The glyph column holds a duplicate, so distinctness is over
			// the (prompt, answer) pair, which is unique per table row.
			seen := make(map[[2]string]bool, len(questions))
			for _, q := range questions {
				key := [2]string{q.Prompt, q.Answer}
				assert.False(t, seen[key], "kind %d drew source %v twice", kind, key)
				seen[key] = true
			}
		}
	}
}

func TestGenerateLabels(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(3)))

	_, label := gen.Generate(KindBrahmiToDevanagari)
	assert.Equal(t, "Brahmi to Devanagari", label)

	_, label = gen.Generate(KindSoundToBrahmi)
	assert.Equal(t, "Sound to Brahmi", label)

	_, label = gen.Generate(KindVocabulary)
	assert.Equal(t, "Devanagari Vocabulary to Brahmi", label)
}

func TestGenerateUnknownKindFallsBackToVocabulary(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(3)))

	for _, kind := range []Kind{0, 4, 99, -1} {
		questions, label := gen.Generate(kind)
		require.Len(t, questions, QuestionCount)
		assert.Equal(t, KindVocabulary.Label(), label)
	}
}

func TestGenerateDeterministicWithFixedSeed(t *testing.T) {
	first, label1 := NewGenerator(rand.New(rand.NewSource(42))).Generate(KindSoundToBrahmi)
	second, label2 := NewGenerator(rand.New(rand.NewSource(42))).Generate(KindSoundToBrahmi)

	require.Equal(t, label1, label2)
	require.Equal(t, first, second)
}
