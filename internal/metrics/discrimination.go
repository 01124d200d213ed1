package metrics

// Qualitative discrimination tiers for an AUC score.
const (
	DiscriminationNone        = "No discrimination"
	DiscriminationPoor        = "Poor"
	DiscriminationAcceptable  = "Acceptable"
	DiscriminationExcellent   = "Excellent"
	DiscriminationOutstanding = "Outstanding"
)

// Discrimination maps an AUC to its qualitative tier. Anything at or
// below 0.5 discriminates no better than a coin and is reported as no
// discrimination.
func Discrimination(auc float64) string {
	switch {
	case auc > 0.9:
		return DiscriminationOutstanding
	case auc > 0.8:
		return DiscriminationExcellent
	case auc > 0.7:
		return DiscriminationAcceptable
	case auc > 0.5:
		return DiscriminationPoor
	default:
		return DiscriminationNone
	}
}
