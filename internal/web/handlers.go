package web

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"brahmi-tutor/internal/assistant"
	"brahmi-tutor/internal/quiz"
	"brahmi-tutor/internal/score"
	"brahmi-tutor/internal/script"
)

// ScoreHistory is the read side of the score store.
type ScoreHistory interface {
	LatestPerKind(ctx context.Context) ([]score.Record, error)
}

// App holds the page handlers and their collaborators.
type App struct {
	sessions *quiz.Manager
	history  ScoreHistory
	asker    assistant.Asker
	tmpl     *TemplateRenderer
	logger   *zap.Logger
}

func NewApp(sessions *quiz.Manager, history ScoreHistory, asker assistant.Asker, tmpl *TemplateRenderer, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		sessions: sessions,
		history:  history,
		asker:    asker,
		tmpl:     tmpl,
		logger:   logger,
	}
}

func (a *App) HandleHome(w http.ResponseWriter, r *http.Request) {
	redirect(w, r, "/welcome")
}

func (a *App) HandleWelcome(w http.ResponseWriter, r *http.Request) {
	a.tmpl.Render(w, "welcome.html", map[string]interface{}{
		"Title":   "Welcome",
		"Letters": script.Letters(),
		"Pages":   sitePages,
	})
}

func (a *App) HandleLesson(w http.ResponseWriter, r *http.Request) {
	a.tmpl.Render(w, "lesson.html", map[string]interface{}{
		"Title":      "Lesson",
		"Letters":    script.Letters(),
		"Categories": script.Categories(),
	})
}

func (a *App) HandleProgress(w http.ResponseWriter, r *http.Request) {
	records, err := a.history.LatestPerKind(r.Context())
	if err != nil {
		// Progress degrades to an empty history rather than failing.
		a.logger.Error("reading score history", zap.Error(err))
		records = nil
	}
	a.tmpl.Render(w, "progress.html", map[string]interface{}{
		"Title":   "Progress",
		"Results": records,
	})
}

// HandleQuizStart renders the start page for quiz {n}.
func (a *App) HandleQuizStart(w http.ResponseWriter, r *http.Request) {
	number, ok := pathInt(r, "n")
	if !ok {
		redirect(w, r, "/welcome")
		return
	}
	a.tmpl.Render(w, "quiz_start.html", map[string]interface{}{
		"Title":  "Quiz",
		"Number": number,
		"Label":  quiz.Kind(number).Label(),
	})
}

// HandleQuizBegin starts a fresh session for quiz {n}, replacing any
// session already in progress.
func (a *App) HandleQuizBegin(w http.ResponseWriter, r *http.Request) {
	number, ok := pathInt(r, "n")
	if !ok {
		redirect(w, r, "/welcome")
		return
	}
	a.sessions.Start(quiz.Kind(number))
	redirect(w, r, questionPath(number, 0))
}

func (a *App) HandleQuizQuestion(w http.ResponseWriter, r *http.Request) {
	number, ok := pathInt(r, "n")
	if !ok {
		redirect(w, r, "/welcome")
		return
	}
	index, ok := pathInt(r, "i")
	if !ok {
		redirect(w, r, questionPath(number, 0))
		return
	}

	view, err := a.sessions.View(index)
	switch {
	case errors.Is(err, quiz.ErrNoSession):
		redirect(w, r, quizPath(number))
		return
	case errors.Is(err, quiz.ErrIndexOutOfRange):
		redirect(w, r, questionPath(number, 0))
		return
	}

	a.tmpl.Render(w, "quiz_question.html", map[string]interface{}{
		"Title":    view.Label,
		"Number":   number,
		"Label":    view.Label,
		"Index":    view.Index,
		"Count":    view.Count,
		"Question": view.Question,
		"Selected": view.Selected,
	})
}

func (a *App) HandleQuizAnswer(w http.ResponseWriter, r *http.Request) {
	number, ok := pathInt(r, "n")
	if !ok {
		redirect(w, r, "/welcome")
		return
	}
	index, ok := pathInt(r, "i")
	if !ok {
		redirect(w, r, questionPath(number, 0))
		return
	}

	if err := r.ParseForm(); err != nil {
		redirect(w, r, questionPath(number, index))
		return
	}
	answer := r.PostFormValue("answer")
	action := r.PostFormValue("action")

	next, submitted, err := a.sessions.Answer(r.Context(), index, answer, action)
	if errors.Is(err, quiz.ErrNoSession) {
		redirect(w, r, quizPath(number))
		return
	}
	if submitted {
		if err != nil {
			// The attempt is graded either way; history just loses a row.
			a.logger.Error("persisting quiz score", zap.Error(err))
		}
		redirect(w, r, resultPath(number))
		return
	}
	redirect(w, r, questionPath(number, next))
}

func (a *App) HandleQuizResult(w http.ResponseWriter, r *http.Request) {
	number, ok := pathInt(r, "n")
	if !ok {
		redirect(w, r, "/welcome")
		return
	}

	result, err := a.sessions.Result()
	if err != nil {
		redirect(w, r, quizPath(number))
		return
	}

	a.tmpl.Render(w, "quiz_result.html", map[string]interface{}{
		"Title":   "Result",
		"Number":  number,
		"Label":   result.Label,
		"Score":   result.Score,
		"Total":   result.Total,
		"Entries": result.Entries,
	})
}

func (a *App) HandleHelper(w http.ResponseWriter, r *http.Request) {
	a.tmpl.Render(w, "llm_helper.html", map[string]interface{}{
		"Title": "LLM Helper",
		"Query": "",
	})
}

func (a *App) HandleHelperAsk(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirect(w, r, "/llm_helper")
		return
	}
	query := r.PostFormValue("query")
	if strings.TrimSpace(query) == "" {
		redirect(w, r, "/llm_helper")
		return
	}

	reply := a.asker.Ask(r.Context(), query)
	a.tmpl.Render(w, "llm_helper.html", map[string]interface{}{
		"Title":    "LLM Helper",
		"Query":    query,
		"Response": renderMarkdown(reply),
	})
}

func (a *App) HandleConverter(w http.ResponseWriter, r *http.Request) {
	a.tmpl.Render(w, "brahmi_converter.html", map[string]interface{}{
		"Title": "Brahmi Converter",
	})
}
