package score

import (
	"context"
	"database/sql"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const timestampLayout = "2006-01-02 15:04:05"

// SQLiteStore keeps score history in a local SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		path = "progress.db"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) initSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			quiz_type TEXT,
			score INTEGER,
			timestamp TEXT
		);`)
	return err
}

// Append inserts one result row stamped with the current local time.
func (s *SQLiteStore) Append(ctx context.Context, quizKind string, score int) error {
	timestamp := time.Now().Format(timestampLayout)
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO results (quiz_type, score, timestamp) VALUES (?, ?, ?)`,
		quizKind,
		score,
		timestamp,
	)
	return err
}

// LatestPerKind returns one record per distinct quiz kind, the one
// with the maximal timestamp. Same-second ties break arbitrarily.
func (s *SQLiteStore) LatestPerKind(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT quiz_type, MAX(timestamp), score FROM results GROUP BY quiz_type`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var record Record
		if err := rows.Scan(&record.QuizKind, &record.Timestamp, &record.Score); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
