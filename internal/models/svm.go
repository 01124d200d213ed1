package models

import (
	"errors"
	"math/rand"
)

// SVM is a linear support-vector machine fitted with Pegasos-style
// stochastic subgradient descent on the hinge loss. Inputs are
// standardized inside Fit; the scaler travels with the model so a
// gob-restored instance scores raw vectors correctly.
type SVM struct {
	Lambda  float64
	Epochs  int
	Seed    int64
	Weights []float64
	Bias    float64
	Mean    []float64
	Scale   []float64
}

func NewSVM() *SVM {
	return &SVM{Lambda: 1e-4, Epochs: 20, Seed: 1}
}

func (s *SVM) Name() string { return "SVM" }

func (s *SVM) Fit(X [][]float64, y []int) error {
	n := len(X)
	if n == 0 {
		return errors.New("empty training set")
	}
	d := len(X[0])
	s.Mean, s.Scale = fitStandardizer(X)
	Xs := standardize(X, s.Mean, s.Scale)

	s.Weights = make([]float64, d)
	s.Bias = 0
	rng := rand.New(rand.NewSource(s.Seed))
	t := 0
	for epoch := 0; epoch < s.Epochs; epoch++ {
		for _, i := range rng.Perm(n) {
			t++
			eta := 1.0 / (s.Lambda * float64(t))
			yi := -1.0
			if y[i] == 1 {
				yi = 1.0
			}
			margin := yi * (dot(s.Weights, Xs[i]) + s.Bias)
			for j := 0; j < d; j++ {
				s.Weights[j] *= 1 - eta*s.Lambda
			}
			if margin < 1 {
				for j := 0; j < d; j++ {
					s.Weights[j] += eta * yi * Xs[i][j]
				}
				s.Bias += eta * yi
			}
		}
	}
	return nil
}

// Decision returns the signed distance to the separating hyperplane
// for each row, in standardized feature space.
func (s *SVM) Decision(X [][]float64) []float64 {
	Xs := standardize(X, s.Mean, s.Scale)
	out := make([]float64, len(Xs))
	for i := range Xs {
		out[i] = dot(s.Weights, Xs[i]) + s.Bias
	}
	return out
}

// PredictProba maps the margin through a sigmoid. The score is
// uncalibrated but monotone in the margin, which is all ROC needs.
func (s *SVM) PredictProba(X [][]float64) []float64 {
	out := s.Decision(X)
	for i := range out {
		out[i] = sigmoid(out[i])
	}
	return out
}

func (s *SVM) Predict(X [][]float64) []int {
	ps := s.PredictProba(X)
	out := make([]int, len(ps))
	for i := range ps {
		if ps[i] >= 0.5 {
			out[i] = 1
		}
	}
	return out
}
