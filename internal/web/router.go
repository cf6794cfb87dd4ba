package web

import (
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// NewRouter wires the full HTTP surface. Index vars accept negative
// values so out-of-range navigation redirects instead of 404ing.
func NewRouter(app *App, staticDir string, logger *zap.Logger) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", app.HandleHome).Methods(http.MethodGet)
	r.HandleFunc("/welcome", app.HandleWelcome).Methods(http.MethodGet)
	r.HandleFunc("/lesson", app.HandleLesson).Methods(http.MethodGet)
	r.HandleFunc("/progress", app.HandleProgress).Methods(http.MethodGet)

	r.HandleFunc("/quiz/{n:-?[0-9]+}", app.HandleQuizStart).Methods(http.MethodGet)
	r.HandleFunc("/quiz/{n:-?[0-9]+}/start", app.HandleQuizBegin).Methods(http.MethodPost)
	r.HandleFunc("/quiz/{n:-?[0-9]+}/question/{i:-?[0-9]+}", app.HandleQuizQuestion).Methods(http.MethodGet)
	r.HandleFunc("/quiz/{n:-?[0-9]+}/question/{i:-?[0-9]+}", app.HandleQuizAnswer).Methods(http.MethodPost)
	r.HandleFunc("/quiz/{n:-?[0-9]+}/result", app.HandleQuizResult).Methods(http.MethodGet)

	r.HandleFunc("/llm_helper", app.HandleHelper).Methods(http.MethodGet)
	r.HandleFunc("/llm_helper", app.HandleHelperAsk).Methods(http.MethodPost)
	r.HandleFunc("/brahmi_converter", app.HandleConverter).Methods(http.MethodGet)

	r.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))),
	)

	return handlers.RecoveryHandler()(requestLogger(logger)(r))
}

func requestLogger(logger *zap.Logger) mux.MiddlewareFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
