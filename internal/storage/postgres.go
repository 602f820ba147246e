package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/rohithredddy/plagiarism-Check-Demo/internal/models"
)

const submissionsSchema = `
CREATE TABLE IF NOT EXISTS submissions (
	id SERIAL PRIMARY KEY,
	submission_id TEXT NOT NULL,
	submitted_at TIMESTAMPTZ NOT NULL,
	question_type TEXT NOT NULL,
	answer TEXT NOT NULL,
	similarity_score DOUBLE PRECISION NOT NULL
)`

// PostgresStore is the corpus backend for multi-worker deployments, where the
// database serializes appends against reads.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	if _, err := db.Exec(submissionsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Load() ([]models.Submission, error) {
	rows, err := s.db.Query(
		`SELECT submission_id, submitted_at, question_type, answer, similarity_score
		 FROM submissions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	defer rows.Close()

	subs := []models.Submission{}
	for rows.Next() {
		var sub models.Submission
		if err := rows.Scan(&sub.ID, &sub.Timestamp, &sub.QuestionType, &sub.Answer, &sub.SimilarityScore); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func (s *PostgresStore) Append(sub models.Submission) error {
	_, err := s.db.Exec(
		`INSERT INTO submissions (submission_id, submitted_at, question_type, answer, similarity_score)
		 VALUES ($1, $2, $3, $4, $5)`,
		sub.ID, sub.Timestamp, sub.QuestionType, sub.Answer, sub.SimilarityScore)
	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
