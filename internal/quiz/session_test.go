package quiz

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sinkCall struct {
	kind  string
	score int
}

type stubSink struct {
	calls []sinkCall
	err   error
}

func (s *stubSink) Append(_ context.Context, quizKind string, score int) error {
	s.calls = append(s.calls, sinkCall{kind: quizKind, score: score})
	return s.err
}

func newTestManager(t *testing.T) (*Manager, *stubSink) {
	t.Helper()
	sink := &stubSink{}
	return NewManager(NewGenerator(rand.New(rand.NewSource(1))), sink), sink
}

func TestViewWithoutSession(t *testing.T) {
	m, _ := newTestManager(t)
	_, err := m.View(0)
	require.ErrorIs(t, err, ErrNoSession)
}

func TestViewOutOfRange(t *testing.T) {
	m, _ := newTestManager(t)
	m.Start(KindSoundToBrahmi)

	for _, index := range []int{-1, QuestionCount, 42} {
		_, err := m.View(index)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "index %d", index)
	}

	view, err := m.View(QuestionCount - 1)
	require.NoError(t, err)
	assert.Equal(t, QuestionCount-1, view.Index)
	assert.Equal(t, QuestionCount, view.Count)
}

func TestAnswerWithoutSession(t *testing.T) {
	m, _ := newTestManager(t)
	_, _, err := m.Answer(context.Background(), 0, "x", ActionNext)
	require.ErrorIs(t, err, ErrNoSession)
}

func TestAnswerNavigationClamps(t *testing.T) {
	m, _ := newTestManager(t)
	m.Start(KindBrahmiToDevanagari)
	ctx := context.Background()

	next, submitted, err := m.Answer(ctx, 0, "x", ActionPrev)
	require.NoError(t, err)
	assert.False(t, submitted)
	assert.Equal(t, 0, next)

	next, _, err = m.Answer(ctx, QuestionCount-1, "x", ActionNext)
	require.NoError(t, err)
	assert.Equal(t, QuestionCount-1, next)

	// An unrecognized action stays put but still records the answer.
	next, _, err = m.Answer(ctx, 3, "stay", "reload")
	require.NoError(t, err)
	assert.Equal(t, 3, next)
	view, err := m.View(3)
	require.NoError(t, err)
	assert.Equal(t, "stay", view.Selected)
}

func TestAnswerOverwritesSilently(t *testing.T) {
	m, _ := newTestManager(t)
	m.Start(KindVocabulary)
	ctx := context.Background()

	_, _, err := m.Answer(ctx, 2, "first", ActionNext)
	require.NoError(t, err)
	_, _, err = m.Answer(ctx, 2, "second", ActionNext)
	require.NoError(t, err)

	view, err := m.View(2)
	require.NoError(t, err)
	assert.Equal(t, "second", view.Selected)
}

func TestStartReplacesExistingSession(t *testing.T) {
	m, _ := newTestManager(t)
	m.Start(KindBrahmiToDevanagari)
	_, _, err := m.Answer(context.Background(), 0, "x", ActionNext)
	require.NoError(t, err)

	s := m.Start(KindSoundToBrahmi)
	assert.Equal(t, KindSoundToBrahmi, s.Kind)
	view, err := m.View(0)
	require.NoError(t, err)
	assert.Empty(t, view.Selected, "old answers must not survive a restart")
}

func TestFullRunScoresAndPersists(t *testing.T) {
	m, sink := newTestManager(t)
	s := m.Start(KindSoundToBrahmi)
	ctx := context.Background()

	for i := 0; i < len(s.Questions)-1; i++ {
		next, submitted, err := m.Answer(ctx, i, s.Questions[i].Answer, ActionNext)
		require.NoError(t, err)
		require.False(t, submitted)
		require.Equal(t, i+1, next)
	}

	last := len(s.Questions) - 1
	_, submitted, err := m.Answer(ctx, last, s.Questions[last].Answer, ActionSubmit)
	require.NoError(t, err)
	require.True(t, submitted)

	require.Len(t, sink.calls, 1)
	assert.Equal(t, "Sound to Brahmi", sink.calls[0].kind)
	assert.Equal(t, len(s.Questions), sink.calls[0].score)

	result, err := m.Result()
	require.NoError(t, err)
	assert.Equal(t, len(s.Questions), result.Score)
	assert.Equal(t, len(s.Questions), result.Total)
	require.Len(t, result.Entries, len(s.Questions))
	for i, entry := range result.Entries {
		assert.Equal(t, s.Questions[i].Prompt, entry.Prompt)
		assert.Equal(t, s.Questions[i].Answer, entry.UserAnswer)
	}
}

func TestGradeIdempotentAndBounded(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.Start(KindVocabulary)
	ctx := context.Background()

	_, _, err := m.Answer(ctx, 0, s.Questions[0].Answer, ActionNext)
	require.NoError(t, err)
	_, _, err = m.Answer(ctx, 1, "definitely wrong", ActionNext)
	require.NoError(t, err)

	first := s.Grade()
	second := s.Grade()
	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first, 0)
	assert.LessOrEqual(t, first, len(s.Questions))
	assert.Equal(t, 1, first)
}

func TestResultRequiresSubmission(t *testing.T) {
	m, _ := newTestManager(t)

	_, err := m.Result()
	require.ErrorIs(t, err, ErrNoScore)

	m.Start(KindBrahmiToDevanagari)
	_, err = m.Result()
	require.ErrorIs(t, err, ErrNoScore, "an unsubmitted session has no result")
}

func TestSubmitPersistFailureStillCompletes(t *testing.T) {
	m, sink := newTestManager(t)
	sink.err = errors.New("disk full")
	m.Start(KindSoundToBrahmi)

	_, submitted, err := m.Answer(context.Background(), 0, "x", ActionSubmit)
	require.True(t, submitted)
	require.Error(t, err)

	// The attempt is graded even though history lost the row.
	result, resultErr := m.Result()
	require.NoError(t, resultErr)
	assert.Equal(t, QuestionCount, result.Total)
}
