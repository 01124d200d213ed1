package models

import "math"

// fitStandardizer computes per-feature mean and standard deviation.
// Constant features get scale 1 so transformed values stay finite.
func fitStandardizer(X [][]float64) (mean, scale []float64) {
	n := len(X)
	d := len(X[0])
	mean = make([]float64, d)
	scale = make([]float64, d)
	for j := 0; j < d; j++ {
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += X[i][j]
		}
		mean[j] = sum / float64(n)
		ss := 0.0
		for i := 0; i < n; i++ {
			dv := X[i][j] - mean[j]
			ss += dv * dv
		}
		scale[j] = math.Sqrt(ss / float64(n))
		if scale[j] < 1e-12 {
			scale[j] = 1
		}
	}
	return mean, scale
}

func standardize(X [][]float64, mean, scale []float64) [][]float64 {
	out := make([][]float64, len(X))
	for i := range X {
		row := make([]float64, len(X[i]))
		for j := range X[i] {
			row[j] = (X[i][j] - mean[j]) / scale[j]
		}
		out[i] = row
	}
	return out
}

func sigmoid(z float64) float64 { return 1.0 / (1.0 + math.Exp(-z)) }

func dot(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}
