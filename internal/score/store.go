// Package score persists quiz results. History is append-only: rows
// are never updated or deleted, and repeated kinds are expected.
package score

import "context"

// Record is one persisted quiz result. Timestamp is local wall-clock
// time with second precision, formatted "2006-01-02 15:04:05".
type Record struct {
	QuizKind  string
	Timestamp string
	Score     int
}

// Store is the score history contract. Append must be durable across
// process restarts; the in-memory quiz session explicitly is not.
type Store interface {
	Append(ctx context.Context, quizKind string, score int) error
	LatestPerKind(ctx context.Context) ([]Record, error)
	Close() error
}
