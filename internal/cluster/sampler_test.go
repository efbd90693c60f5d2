package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/clustergen/internal/randutil"
	"github.com/lox/clustergen/internal/strand"
)

func TestSampleCentroidsPairwiseDistance(t *testing.T) {
	tests := []struct {
		name        string
		n, length   int
		minDistance int
	}{
		{"strands defaults", 8, 10, 3},
		{"points defaults", 8, 20, 5},
		{"single centroid", 1, 4, 4},
		{"no separation", 20, 3, 0},
		{"no clusters", 0, 10, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := SampleCentroids(randutil.New(17), tt.n, tt.length, tt.minDistance, 10000)
			require.NoError(t, err)
			require.Len(t, res.Centroids, tt.n)

			for i, a := range res.Centroids {
				assert.Len(t, a, tt.length)
				assert.True(t, a.Valid())
				for _, b := range res.Centroids[i+1:] {
					d, err := strand.Hamming(a, b)
					require.NoError(t, err)
					assert.GreaterOrEqual(t, d, tt.minDistance)
				}
			}
		})
	}
}

func TestSampleCentroidsInfeasible(t *testing.T) {
	// Distance above the strand length can never be met once one centroid
	// has been accepted.
	res, err := SampleCentroids(randutil.New(1), 2, 4, 5, 50)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInfeasible)
	assert.Len(t, res.Centroids, 1)
	assert.Equal(t, 50, res.Rejected)
}

func TestSampleCentroidsTooManyForAlphabet(t *testing.T) {
	// Only 4 distinct strands of length 1 exist.
	_, err := SampleCentroids(randutil.New(1), 5, 1, 1, 200)
	assert.ErrorIs(t, err, ErrInfeasible)
}

func TestSampleCentroidsRejectsBadBudget(t *testing.T) {
	_, err := SampleCentroids(randutil.New(1), 1, 4, 0, 0)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInfeasible)
}

func TestSampleCentroidsDeterministic(t *testing.T) {
	a, err := SampleCentroids(randutil.New(99), 5, 12, 4, 1000)
	require.NoError(t, err)
	b, err := SampleCentroids(randutil.New(99), 5, 12, 4, 1000)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
