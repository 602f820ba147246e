package similarity

import (
	"math"
	"strings"
)

// Score compares the candidate text against every reference text and returns
// the highest cosine similarity as a percentage. Documents are bags of
// whitespace tokens weighted with smoothed tf-idf. An empty reference set
// means there is nothing to compare against: the score is 0 and the answer
// counts as original.
func Score(candidate string, refs []string) float64 {
	if len(refs) == 0 {
		return 0.0
	}

	docs := make([][]string, 0, len(refs)+1)
	docs = append(docs, strings.Fields(candidate))
	for _, r := range refs {
		docs = append(docs, strings.Fields(r))
	}

	idf := inverseDocFreq(docs)
	if len(idf) == 0 {
		return 0.0
	}

	vectors := make([]map[string]float64, len(docs))
	for i, doc := range docs {
		vectors[i] = vectorize(doc, idf)
	}

	best := 0.0
	for _, ref := range vectors[1:] {
		if sim := dot(vectors[0], ref); sim > best {
			best = sim
		}
	}

	score := best * 100.0
	if math.IsNaN(score) || score < 0.0 {
		return 0.0
	}
	if score > 100.0 {
		return 100.0
	}
	return score
}

// inverseDocFreq computes smoothed idf weights: ln((1+N)/(1+df)) + 1.
func inverseDocFreq(docs [][]string) map[string]float64 {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool, len(doc))
		for _, term := range doc {
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
		}
	}

	n := float64(len(docs))
	idf := make(map[string]float64, len(df))
	for term, count := range df {
		idf[term] = math.Log((1+n)/(1+float64(count))) + 1
	}
	return idf
}

// vectorize builds an L2-normalized tf-idf vector for one document, so the
// cosine of two vectors reduces to their dot product.
func vectorize(tokens []string, idf map[string]float64) map[string]float64 {
	vec := make(map[string]float64)
	for _, term := range tokens {
		vec[term]++
	}

	var norm float64
	for term := range vec {
		vec[term] *= idf[term]
		norm += vec[term] * vec[term]
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for term := range vec {
		vec[term] /= norm
	}
	return vec
}

func dot(a, b map[string]float64) float64 {
	var sum float64
	for term, va := range a {
		if vb, ok := b[term]; ok {
			sum += va * vb
		}
	}
	return sum
}
