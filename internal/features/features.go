package features

import (
	"strings"

	"rocreport/internal/data"
)

var employments = []string{"salaried", "self_employed", "contract", "retired", "unemployed"}
var housings = []string{"own", "mortgage", "rent"}

// Vectorize maps an applicant to a numeric feature vector and the
// matching feature names.
func Vectorize(a data.Applicant) ([]float64, []string) {
	names := []string{}
	vec := []float64{}

	names = append(names, "Age", "Income", "LoanAmount", "TermMonths", "LatePayments", "Utilization")
	vec = append(vec, float64(a.Age), a.Income, a.LoanAmount, float64(a.TermMonths), float64(a.LatePayments), a.Utilization)

	burden := 0.0
	if a.Income > 0 && a.TermMonths > 0 {
		burden = a.LoanAmount / float64(a.TermMonths) / a.Income
	}
	names = append(names, "InstallmentBurden")
	vec = append(vec, burden)

	highUtil := boolToFloat(a.Utilization > 0.8)
	repeatLate := boolToFloat(a.LatePayments >= 3)
	names = append(names, "HighUtilization", "RepeatLatePayer")
	vec = append(vec, highUtil, repeatLate)

	empLower := strings.ToLower(a.Employment)
	for _, e := range employments {
		names = append(names, "Emp_"+e)
		if e == empLower {
			vec = append(vec, 1.0)
		} else {
			vec = append(vec, 0.0)
		}
	}
	houseLower := strings.ToLower(a.Housing)
	for _, h := range housings {
		names = append(names, "Housing_"+h)
		if h == houseLower {
			vec = append(vec, 1.0)
		} else {
			vec = append(vec, 0.0)
		}
	}

	return vec, names
}

func boolToFloat(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}
