// Package matching encodes traveler preferences as fixed-length vectors and
// ranks and groups travelers by similarity.
package matching

import (
	"math"
	"strings"
)

// Fixed ordered interest vocabulary for the one-hot encoding. The profile
// vector length is 3 scalars + len(interestVocabulary).
var interestVocabulary = []string{
	"adventure",
	"culture",
	"nature",
	"food",
	"local",
	"luxury",
	"budget",
	"relaxation",
}

// VectorLength is the constant length of every profile vector.
const VectorLength = 3 + 8

// Vectorize encodes a traveler's preferences into a unit-normalized vector:
// [sustainability, days, budget] scalars followed by the interest encoding.
func Vectorize(sustainabilityScoreMin float64, interests []string, days int, budget float64) []float64 {
	vector := make([]float64, 0, VectorLength)
	vector = append(vector,
		sustainabilityScoreMin/100.0,
		math.Min(float64(days)/30.0, 1.0),
		math.Min(budget/10000.0, 1.0),
	)
	vector = append(vector, encodeInterests(interests)...)
	return Normalize(vector)
}

// encodeInterests marks each vocabulary entry present as a case-insensitive
// substring of any declared interest.
func encodeInterests(interests []string) []float64 {
	encoding := make([]float64, len(interestVocabulary))
	for i, vocab := range interestVocabulary {
		for _, interest := range interests {
			if strings.Contains(strings.ToLower(interest), vocab) {
				encoding[i] = 1.0
				break
			}
		}
	}
	return encoding
}

// Normalize scales a vector to unit length. The zero vector is returned unchanged.
func Normalize(vector []float64) []float64 {
	var sumSquares float64
	for _, v := range vector {
		sumSquares += v * v
	}
	magnitude := math.Sqrt(sumSquares)
	if magnitude == 0 {
		return vector
	}

	normalized := make([]float64, len(vector))
	for i, v := range vector {
		normalized[i] = v / magnitude
	}
	return normalized
}
