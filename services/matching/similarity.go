package matching

import (
	"fmt"
	"math"
	"sort"
)

// CosineSimilarity returns the cosine similarity of two equal-length vectors.
// Zero-magnitude vectors yield 0.0 by convention.
func CosineSimilarity(u, v []float64) (float64, error) {
	if len(u) != len(v) {
		return 0, fmt.Errorf("vectors must have equal length: %d != %d", len(u), len(v))
	}

	var dot, magU, magV float64
	for i := range u {
		dot += u[i] * v[i]
		magU += u[i] * u[i]
		magV += v[i] * v[i]
	}

	if magU == 0 || magV == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(magU) * math.Sqrt(magV)), nil
}

// EuclideanDistance returns the L2 distance of two equal-length vectors.
func EuclideanDistance(u, v []float64) (float64, error) {
	if len(u) != len(v) {
		return 0, fmt.Errorf("vectors must have equal length: %d != %d", len(u), len(v))
	}

	var sum float64
	for i := range u {
		d := u[i] - v[i]
		sum += d * d
	}
	return math.Sqrt(sum), nil
}

// Candidate is a traveler vector under consideration for ranking.
type Candidate struct {
	ID     string
	Vector []float64
}

// Match is a candidate that cleared the similarity threshold.
type Match struct {
	ID    string
	Score float64
}

// FindSimilar ranks candidates by cosine similarity against a reference
// vector, keeping those at or above the threshold, sorted descending and
// truncated to topK. Ties keep input order.
func FindSimilar(reference []float64, candidates []Candidate, threshold float64, topK int) ([]Match, error) {
	var matches []Match
	for _, c := range candidates {
		similarity, err := CosineSimilarity(reference, c.Vector)
		if err != nil {
			return nil, fmt.Errorf("candidate %s: %w", c.ID, err)
		}
		if similarity >= threshold {
			matches = append(matches, Match{ID: c.ID, Score: similarity})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if topK >= 0 && len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}
