package models

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// separable builds a linearly separable 2D problem: positive iff
// x0 + x1 > 1, with points kept away from the boundary.
func separable(n int, seed int64) ([][]float64, []int) {
	rng := rand.New(rand.NewSource(seed))
	X := make([][]float64, 0, n)
	y := make([]int, 0, n)
	for len(X) < n {
		a := rng.Float64() * 2
		b := rng.Float64() * 2
		s := a + b
		if s > 0.8 && s < 1.2 {
			continue
		}
		X = append(X, []float64{a, b})
		if s > 1 {
			y = append(y, 1)
		} else {
			y = append(y, 0)
		}
	}
	return X, y
}

func TestSVMSeparates(t *testing.T) {
	t.Parallel()

	X, y := separable(400, 3)
	svm := NewSVM()
	require.NoError(t, svm.Fit(X, y))

	preds := svm.Predict(X)
	correct := 0
	for i := range y {
		if preds[i] == y[i] {
			correct++
		}
	}
	assert.GreaterOrEqual(t, float64(correct)/float64(len(y)), 0.95)
}

func TestSVMDeterministicForSeed(t *testing.T) {
	t.Parallel()

	X, y := separable(200, 5)
	a := NewSVM()
	b := NewSVM()
	a.Seed, b.Seed = 42, 42
	require.NoError(t, a.Fit(X, y))
	require.NoError(t, b.Fit(X, y))
	assert.Equal(t, a.Weights, b.Weights)
	assert.Equal(t, a.Bias, b.Bias)
}

func TestSVMProbaRange(t *testing.T) {
	t.Parallel()

	X, y := separable(200, 9)
	svm := NewSVM()
	require.NoError(t, svm.Fit(X, y))
	for _, p := range svm.PredictProba(X) {
		assert.Greater(t, p, 0.0)
		assert.Less(t, p, 1.0)
	}
}

func TestSVMEmptyTrainingSet(t *testing.T) {
	t.Parallel()

	assert.Error(t, NewSVM().Fit(nil, nil))
}
