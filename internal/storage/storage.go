package storage

import "github.com/rohithredddy/plagiarism-Check-Demo/internal/models"

// Store is the append-only corpus of evaluated submissions. Load returns the
// submissions in insertion order; an empty corpus is an empty slice, not an
// error.
type Store interface {
	Load() ([]models.Submission, error)
	Append(models.Submission) error
}
