package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/rohithredddy/plagiarism-Check-Demo/internal/models"
	"github.com/rohithredddy/plagiarism-Check-Demo/internal/questions"
	"github.com/rohithredddy/plagiarism-Check-Demo/internal/scoring"
	"github.com/rohithredddy/plagiarism-Check-Demo/internal/similarity"
	"github.com/rohithredddy/plagiarism-Check-Demo/internal/storage"
	"github.com/rohithredddy/plagiarism-Check-Demo/internal/textproc"
)

// Store is the active submission corpus, set once at startup.
var Store storage.Store

// EvaluateHandler runs the full pipeline: normalize the answer, score it
// against the reference corpus, aggregate the result and record the raw
// submission for future checks.
func EvaluateHandler(w http.ResponseWriter, r *http.Request) {
	var req models.EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.Answer == "" || req.QuestionType == "" {
		writeError(w, http.StatusBadRequest, "Answer and question type are required")
		return
	}

	// The corpus is the seed answers for this question type plus every
	// prior submission, whatever its type. Pooling across types catches
	// templated answers reused between questions.
	subs, err := Store.Load()
	if err != nil {
		log.Printf("Corpus load failed: %v", err)
		writeServerError(w, err)
		return
	}
	rawRefs := questions.Samples(req.QuestionType)
	for _, sub := range subs {
		rawRefs = append(rawRefs, sub.Answer)
	}

	// Candidate and references go through the same normalization so an
	// answer copied verbatim lands near 100.
	refs := make([]string, len(rawRefs))
	for i, ref := range rawRefs {
		refs[i] = textproc.Normalize(ref)
	}
	score := similarity.Score(textproc.Normalize(req.Answer), refs)
	result := scoring.Aggregate(score, req.Answer)

	sub := models.Submission{
		ID:              uuid.NewString(),
		Timestamp:       time.Now().UTC(),
		QuestionType:    req.QuestionType,
		Answer:          req.Answer,
		SimilarityScore: score,
	}
	if err := Store.Append(sub); err != nil {
		log.Printf("Submission save failed: %v", err)
		writeServerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// QuestionsHandler lists the available seed questions.
func QuestionsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": questions.All(),
	})
}

// SubmissionsHandler returns the recorded corpus in insertion order.
func SubmissionsHandler(w http.ResponseWriter, r *http.Request) {
	subs, err := Store.Load()
	if err != nil {
		log.Printf("Corpus load failed: %v", err)
		writeServerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":       len(subs),
		"submissions": subs,
	})
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Response write failed: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeServerError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   err.Error(),
		"message": "An error occurred while evaluating the answer",
	})
}
