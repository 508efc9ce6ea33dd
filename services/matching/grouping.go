package matching

import "fmt"

// Similarity methods accepted by GroupCompatibility.
const (
	MethodCosine    = "cosine"
	MethodEuclidean = "euclidean"
)

// GroupCompatibility returns the mean pairwise similarity over all unordered
// pairs of profile vectors, in [0,1] for unit vectors. Fewer than two
// profiles are trivially compatible.
func GroupCompatibility(profiles [][]float64, method string) (float64, error) {
	if len(profiles) < 2 {
		return 1.0, nil
	}

	var sum float64
	pairs := 0
	for i := 0; i < len(profiles); i++ {
		for j := i + 1; j < len(profiles); j++ {
			var sim float64
			var err error
			if method == MethodEuclidean {
				var dist float64
				dist, err = EuclideanDistance(profiles[i], profiles[j])
				sim = 1.0 / (1.0 + dist)
			} else {
				sim, err = CosineSimilarity(profiles[i], profiles[j])
			}
			if err != nil {
				return 0, fmt.Errorf("profiles %d/%d: %w", i, j, err)
			}
			sum += sim
			pairs++
		}
	}

	return sum / float64(pairs), nil
}

// RecommendGroupSize maps aggregate compatibility onto a group size. Up to
// three profiles travel as-is; larger pools shrink as compatibility drops,
// down to pairs.
func RecommendGroupSize(profiles [][]float64) (int, error) {
	if len(profiles) <= 3 {
		return len(profiles), nil
	}

	compatibility, err := GroupCompatibility(profiles, MethodCosine)
	if err != nil {
		return 0, err
	}

	n := len(profiles)
	switch {
	case compatibility > 0.85:
		return min(n, 8), nil
	case compatibility > 0.75:
		return min(n, 6), nil
	case compatibility > 0.65:
		return min(n, 4), nil
	default:
		return 2, nil
	}
}
