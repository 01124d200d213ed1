package metrics

// ConfusionMatrix counts test outcomes at a fixed score threshold.
type ConfusionMatrix struct {
	TP int `json:"tp"`
	FP int `json:"fp"`
	TN int `json:"tn"`
	FN int `json:"fn"`
}

// Confusion thresholds scores at thr and tallies against the actual
// labels.
func Confusion(y []int, scores []float64, thr float64) ConfusionMatrix {
	var cm ConfusionMatrix
	for i := range y {
		pred := 0
		if scores[i] >= thr {
			pred = 1
		}
		switch {
		case pred == 1 && y[i] == 1:
			cm.TP++
		case pred == 1 && y[i] == 0:
			cm.FP++
		case pred == 0 && y[i] == 0:
			cm.TN++
		default:
			cm.FN++
		}
	}
	return cm
}

func (c ConfusionMatrix) Total() int { return c.TP + c.FP + c.TN + c.FN }

func (c ConfusionMatrix) Accuracy() float64 {
	if c.Total() == 0 {
		return 0
	}
	return float64(c.TP+c.TN) / float64(c.Total())
}

func (c ConfusionMatrix) Precision() float64 {
	if c.TP+c.FP == 0 {
		return 0
	}
	return float64(c.TP) / float64(c.TP+c.FP)
}

// Recall is the true-positive rate, also reported as sensitivity.
func (c ConfusionMatrix) Recall() float64 {
	if c.TP+c.FN == 0 {
		return 0
	}
	return float64(c.TP) / float64(c.TP+c.FN)
}

func (c ConfusionMatrix) Sensitivity() float64 { return c.Recall() }

// Specificity is the true-negative rate.
func (c ConfusionMatrix) Specificity() float64 {
	if c.TN+c.FP == 0 {
		return 0
	}
	return float64(c.TN) / float64(c.TN+c.FP)
}

func (c ConfusionMatrix) F1() float64 {
	p := c.Precision()
	r := c.Recall()
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}
