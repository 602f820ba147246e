package scoring

import (
	"strings"

	"github.com/rohithredddy/plagiarism-Check-Demo/internal/models"
)

// Below this similarity percentage an answer counts as original.
const originalityThreshold = 30.0

// Answers shorter than this many words get a fixed quality score.
const shortAnswerWords = 20
const shortAnswerQuality = 0.5

// Aggregate combines the similarity percentage and the raw answer into the
// final evaluation result.
func Aggregate(similarity float64, rawAnswer string) models.EvaluateResponse {
	original := IsOriginal(similarity)
	quality := EnglishQuality(rawAnswer)
	return models.EvaluateResponse{
		IsOriginal:      original,
		SimilarityScore: similarity,
		EnglishQuality:  quality,
		Accuracy:        Accuracy(original, quality),
	}
}

func IsOriginal(similarity float64) bool {
	return similarity < originalityThreshold
}

// EnglishQuality measures lexical diversity as a type-token ratio over the
// lowercased whitespace tokens of the raw answer. Very short answers get a
// fixed 0.5 regardless of their vocabulary.
func EnglishQuality(rawAnswer string) float64 {
	words := strings.Fields(strings.ToLower(rawAnswer))
	if len(words) < shortAnswerWords {
		return shortAnswerQuality
	}

	distinct := make(map[string]bool, len(words))
	for _, w := range words {
		distinct[w] = true
	}
	return float64(len(distinct)) / float64(len(words))
}

// Accuracy weighs originality as a fixed bonus and quality as a smaller
// continuous one, giving a range of roughly [0.3, 1.0].
func Accuracy(isOriginal bool, quality float64) float64 {
	base := 0.3
	if isOriginal {
		base = 0.7
	}
	return base + quality*0.3
}
