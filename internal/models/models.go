package models

import "time"

type Submission struct {
	ID              string    `json:"id"`
	Timestamp       time.Time `json:"timestamp"`
	QuestionType    string    `json:"question_type"`
	Answer          string    `json:"answer"`
	SimilarityScore float64   `json:"similarity_score"` // 0.0 - 100.0
}

type EvaluateRequest struct {
	Answer       string `json:"answer"`
	QuestionType string `json:"question_type"`
}

type EvaluateResponse struct {
	IsOriginal      bool    `json:"is_original"`
	SimilarityScore float64 `json:"similarity_score"` // 0.0 - 100.0
	EnglishQuality  float64 `json:"english_quality"`  // 0.0 - 1.0
	Accuracy        float64 `json:"accuracy"`
}

type Question struct {
	Type     string `json:"type"`
	Question string `json:"question"`
}
