package metrics

import (
	"math"
	"sort"
)

// ROCPoint is one point of the ROC curve: the false- and true-positive
// rates obtained when classifying positive at score >= Threshold.
type ROCPoint struct {
	FPR       float64
	TPR       float64
	Threshold float64
}

type scoredLabel struct {
	s float64
	y int
}

func sortedByScore(y []int, scores []float64) ([]scoredLabel, int, int) {
	pairs := make([]scoredLabel, len(y))
	for i := range y {
		pairs[i] = scoredLabel{scores[i], y[i]}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].s > pairs[j].s })
	var pos, neg int
	for _, p := range pairs {
		if p.y == 1 {
			pos++
		} else {
			neg++
		}
	}
	return pairs, pos, neg
}

// Curve sweeps the score thresholds from high to low and returns the
// (FPR, TPR) sequence, starting at (0,0) and ending at (1,1). Tied
// scores produce a single point.
func Curve(y []int, scores []float64) []ROCPoint {
	pairs, pos, neg := sortedByScore(y, scores)
	if pos == 0 || neg == 0 {
		return nil
	}
	points := []ROCPoint{{FPR: 0, TPR: 0, Threshold: math.Inf(1)}}
	tp, fp := 0, 0
	prevS := math.Inf(1)
	for _, p := range pairs {
		if p.s != prevS {
			if prevS != math.Inf(1) {
				points = append(points, ROCPoint{
					FPR:       float64(fp) / float64(neg),
					TPR:       float64(tp) / float64(pos),
					Threshold: prevS,
				})
			}
			prevS = p.s
		}
		if p.y == 1 {
			tp++
		} else {
			fp++
		}
	}
	points = append(points, ROCPoint{FPR: 1, TPR: 1, Threshold: prevS})
	return points
}

// AUC integrates the ROC curve with the trapezoidal rule. Returns 0
// when either class is absent.
func AUC(y []int, scores []float64) float64 {
	pairs, pos, neg := sortedByScore(y, scores)
	if pos == 0 || neg == 0 {
		return 0
	}
	tp, fp := 0, 0
	prevS := math.Inf(1)
	var auc float64
	prevTPR, prevFPR := 0.0, 0.0
	for _, p := range pairs {
		if p.s != prevS {
			tpr := float64(tp) / float64(pos)
			fpr := float64(fp) / float64(neg)
			auc += (fpr - prevFPR) * (tpr + prevTPR) / 2.0
			prevTPR, prevFPR = tpr, fpr
			prevS = p.s
		}
		if p.y == 1 {
			tp++
		} else {
			fp++
		}
	}
	tpr := float64(tp) / float64(pos)
	fpr := float64(fp) / float64(neg)
	auc += (fpr - prevFPR) * (tpr + prevTPR) / 2.0
	return auc
}

// PRAUC integrates the precision-recall curve by step interpolation.
func PRAUC(y []int, scores []float64) float64 {
	pairs, pos, _ := sortedByScore(y, scores)
	if pos == 0 {
		return 0
	}
	var tp, fp int
	fn := pos
	var prevRec, auc float64
	for _, p := range pairs {
		if p.y == 1 {
			tp++
			fn--
		} else {
			fp++
		}
		var prec, rec float64
		if tp+fp > 0 {
			prec = float64(tp) / float64(tp+fp)
		}
		if tp+fn > 0 {
			rec = float64(tp) / float64(tp+fn)
		}
		auc += (rec - prevRec) * prec
		prevRec = rec
	}
	return auc
}
