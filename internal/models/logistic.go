package models

import "errors"

// Logistic is a baseline logistic regression fitted with batch
// gradient descent. Fully deterministic for fixed inputs.
type Logistic struct {
	LearningRate float64
	Epochs       int
	L2           float64
	Weights      []float64
	Bias         float64
	Mean         []float64
	Scale        []float64
}

func NewLogistic() *Logistic {
	return &Logistic{LearningRate: 0.1, Epochs: 300, L2: 1e-4}
}

func (l *Logistic) Name() string { return "LogisticRegression" }

func (l *Logistic) Fit(X [][]float64, y []int) error {
	n := len(X)
	if n == 0 {
		return errors.New("empty training set")
	}
	d := len(X[0])
	l.Mean, l.Scale = fitStandardizer(X)
	Xs := standardize(X, l.Mean, l.Scale)

	l.Weights = make([]float64, d)
	l.Bias = 0
	grad := make([]float64, d)
	for epoch := 0; epoch < l.Epochs; epoch++ {
		for j := range grad {
			grad[j] = 0
		}
		gb := 0.0
		for i := 0; i < n; i++ {
			p := sigmoid(dot(l.Weights, Xs[i]) + l.Bias)
			e := p - float64(y[i])
			for j := 0; j < d; j++ {
				grad[j] += e * Xs[i][j]
			}
			gb += e
		}
		for j := 0; j < d; j++ {
			l.Weights[j] -= l.LearningRate * (grad[j]/float64(n) + l.L2*l.Weights[j])
		}
		l.Bias -= l.LearningRate * gb / float64(n)
	}
	return nil
}

func (l *Logistic) PredictProba(X [][]float64) []float64 {
	Xs := standardize(X, l.Mean, l.Scale)
	out := make([]float64, len(Xs))
	for i := range Xs {
		out[i] = sigmoid(dot(l.Weights, Xs[i]) + l.Bias)
	}
	return out
}

func (l *Logistic) Predict(X [][]float64) []int {
	ps := l.PredictProba(X)
	out := make([]int, len(ps))
	for i := range ps {
		if ps[i] >= 0.5 {
			out[i] = 1
		}
	}
	return out
}
