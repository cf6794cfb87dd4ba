package quiz

import (
	"context"
	"errors"
)

var (
	// ErrNoSession signals that no quiz has been started; callers
	// redirect to the quiz start page rather than erroring.
	ErrNoSession = errors.New("no active quiz session")
	// ErrNoScore signals that the current quiz has not been submitted.
	ErrNoScore = errors.New("quiz has not been submitted")
	// ErrIndexOutOfRange signals a question index outside the session;
	// callers redirect to question 0.
	ErrIndexOutOfRange = errors.New("question index out of range")
)

// Navigation actions accepted by Answer. Any other action records the
// answer and stays on the same question.
const (
	ActionNext   = "next"
	ActionPrev   = "prev"
	ActionSubmit = "submit"
)

// Session is the state of one quiz attempt. Answers is index-aligned
// with Questions; the empty string means "not answered yet". Score is
// nil until the quiz is submitted.
type Session struct {
	Kind      Kind
	Label     string
	Questions []Question
	Answers   []string
	Index     int
	Score     *int
}

// Grade counts answers that exactly match the generated correct
// answer. It is a pure function of Questions and Answers.
func (s *Session) Grade() int {
	score := 0
	for i, q := range s.Questions {
		if i < len(s.Answers) && s.Answers[i] == q.Answer {
			score++
		}
	}
	return score
}

// ScoreSink receives the final score of a submitted quiz.
type ScoreSink interface {
	Append(ctx context.Context, quizKind string, score int) error
}

// QuestionView is the data needed to render one question page.
type QuestionView struct {
	Kind     Kind
	Label    string
	Index    int
	Count    int
	Question Question
	Selected string
}

// ResultEntry pairs a question with the user's answer for the result
// page. UserAnswer is empty when the question was never answered.
type ResultEntry struct {
	Prompt     string
	Answer     string
	UserAnswer string
}

// Result is the outcome of a submitted quiz.
type Result struct {
	Kind    Kind
	Label   string
	Score   int
	Total   int
	Entries []ResultEntry
}

// Manager owns the one process-wide quiz session and drives it through
// start, navigation, grading, and persistence.
//
// The session is intentionally a single mutable slot with no locking:
// this is a single-user application, and concurrent requests (two
// browser tabs, say) race on the same attempt. Supporting independent
// concurrent users would need per-user session keying, which is an
// explicit non-feature of the current design.
type Manager struct {
	gen     *Generator
	scores  ScoreSink
	session *Session
}

func NewManager(gen *Generator, scores ScoreSink) *Manager {
	return &Manager{gen: gen, scores: scores}
}

// Start generates a fresh quiz for kind and replaces any existing
// session, finished or not, without warning.
func (m *Manager) Start(kind Kind) *Session {
	questions, label := m.gen.Generate(kind)
	m.session = &Session{
		Kind:      kind,
		Label:     label,
		Questions: questions,
		Answers:   make([]string, len(questions)),
	}
	return m.session
}

// View returns the render data for the question at index.
func (m *Manager) View(index int) (QuestionView, error) {
	s := m.session
	if s == nil {
		return QuestionView{}, ErrNoSession
	}
	if index < 0 || index >= len(s.Questions) {
		return QuestionView{}, ErrIndexOutOfRange
	}
	return QuestionView{
		Kind:     s.Kind,
		Label:    s.Label,
		Index:    index,
		Count:    len(s.Questions),
		Question: s.Questions[index],
		Selected: s.Answers[index],
	}, nil
}

// Answer records selected at index, silently overwriting any earlier
// answer, then applies the navigation action. next is the index of the
// question to show afterwards, clamped into range. When action is
// ActionSubmit the quiz is graded and the score persisted; submitted
// is true and next is meaningless. A persistence failure is reported
// alongside submitted=true so callers can log it and continue: the
// session itself is already completed.
func (m *Manager) Answer(ctx context.Context, index int, selected, action string) (next int, submitted bool, err error) {
	s := m.session
	if s == nil {
		return 0, false, ErrNoSession
	}
	if index >= 0 && index < len(s.Answers) {
		s.Answers[index] = selected
	}

	if action == ActionSubmit {
		score := s.Grade()
		s.Score = &score
		if m.scores != nil {
			err = m.scores.Append(ctx, s.Label, score)
		}
		return 0, true, err
	}

	next = index
	switch action {
	case ActionNext:
		next = index + 1
	case ActionPrev:
		next = index - 1
	}
	if next < 0 {
		next = 0
	}
	if next > len(s.Questions)-1 {
		next = len(s.Questions) - 1
	}
	s.Index = next
	return next, false, nil
}

// Result returns the graded outcome of the current session. ErrNoScore
// is returned when there is no session or it was never submitted.
func (m *Manager) Result() (Result, error) {
	s := m.session
	if s == nil || s.Score == nil {
		return Result{}, ErrNoScore
	}
	entries := make([]ResultEntry, len(s.Questions))
	for i, q := range s.Questions {
		entries[i] = ResultEntry{
			Prompt:     q.Prompt,
			Answer:     q.Answer,
			UserAnswer: s.Answers[i],
		}
	}
	return Result{
		Kind:    s.Kind,
		Label:   s.Label,
		Score:   *s.Score,
		Total:   len(s.Questions),
		Entries: entries,
	}, nil
}
