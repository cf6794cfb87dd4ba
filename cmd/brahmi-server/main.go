package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"brahmi-tutor/internal/assistant"
	"brahmi-tutor/internal/config"
	"brahmi-tutor/internal/logger"
	"brahmi-tutor/internal/quiz"
	"brahmi-tutor/internal/score"
	"brahmi-tutor/internal/web"
)

var rootCmd = &cobra.Command{
	Use:   "brahmi-server",
	Short: "Web tutor for the Brahmi script",
	Long:  "brahmi-server serves Brahmi script lessons, multiple-choice quizzes with a persisted score history, and an LLM-backed helper page.",
	RunE:  run,
}

func init() {
	rootCmd.Flags().String("addr", "", "HTTP listen address (overrides ADDR env var)")
	rootCmd.Flags().String("db", "", "Path to SQLite score history file (overrides DB_PATH env var)")
	rootCmd.Flags().String("web", "", "Directory holding templates/ and static/ (overrides WEB_DIR env var)")
}

func run(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Addr = addr
	}
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.DBPath = db
	}
	if webDir, _ := cmd.Flags().GetString("web"); webDir != "" {
		cfg.WebDir = webDir
	}

	log, err := logger.New(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	store, err := score.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	sessions := quiz.NewManager(quiz.NewGenerator(nil), store)
	asker := assistant.NewOllamaClient(cfg.Ollama.Binary, cfg.Ollama.Model, cfg.Ollama.Timeout)
	tmpl := web.NewTemplateRenderer(filepath.Join(cfg.WebDir, "templates"))
	app := web.NewApp(sessions, store, asker, tmpl, log)
	router := web.NewRouter(app, filepath.Join(cfg.WebDir, "static"), log)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown", zap.Error(err))
		}
	}()

	log.Info("brahmi-server listening",
		zap.String("addr", cfg.Addr),
		zap.String("db", cfg.DBPath),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
