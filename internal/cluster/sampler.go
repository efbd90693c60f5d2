package cluster

import (
	"errors"
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/clustergen/internal/strand"
)

// ErrInfeasible is returned when no acceptable centroid turns up within the
// attempt budget, usually because too many clusters are requested for the
// strand length and minimum distance.
var ErrInfeasible = errors.New("infeasible parameters")

// SampleResult carries the accepted centroids and how many candidates were
// thrown away on the way.
type SampleResult struct {
	Centroids []strand.Strand
	Rejected  int
}

// SampleCentroids draws n random strands such that each one is at least
// minDistance positions away from every centroid accepted before it. Each
// centroid gets maxAttempts draws.
func SampleCentroids(rng *rand.Rand, n, length, minDistance, maxAttempts int) (SampleResult, error) {
	if maxAttempts < 1 {
		return SampleResult{}, fmt.Errorf("max attempts must be at least 1, got %d", maxAttempts)
	}

	res := SampleResult{Centroids: make([]strand.Strand, 0, n)}
	for i := 0; i < n; i++ {
		accepted := false
		for attempt := 0; attempt < maxAttempts; attempt++ {
			candidate := strand.Random(rng, length)
			if tooClose(candidate, res.Centroids, minDistance) {
				res.Rejected++
				continue
			}
			res.Centroids = append(res.Centroids, candidate)
			accepted = true
			break
		}
		if !accepted {
			return res, fmt.Errorf("%w: centroid %d of %d not found within %d attempts (length %d, min distance %d)",
				ErrInfeasible, i+1, n, maxAttempts, length, minDistance)
		}
	}
	return res, nil
}

// tooClose reports whether candidate is closer than minDistance to any
// accepted centroid.
func tooClose(candidate strand.Strand, accepted []strand.Strand, minDistance int) bool {
	for _, c := range accepted {
		// equal lengths by construction
		d, _ := strand.Hamming(candidate, c)
		if d < minDistance {
			return true
		}
	}
	return false
}
