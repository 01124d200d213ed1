package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rocreport/internal/data"
)

func sampleApplicant() data.Applicant {
	return data.Applicant{
		ApplicantID:  "A1",
		Age:          40,
		Income:       5000,
		LoanAmount:   24000,
		TermMonths:   24,
		LatePayments: 4,
		Utilization:  0.9,
		Employment:   "self_employed",
		Housing:      "rent",
	}
}

func TestVectorizeShape(t *testing.T) {
	t.Parallel()

	vec, names := Vectorize(sampleApplicant())
	require.Equal(t, len(names), len(vec))
	assert.Equal(t, "Age", names[0])
}

func TestVectorizeDerivedFeatures(t *testing.T) {
	t.Parallel()

	vec, names := Vectorize(sampleApplicant())
	byName := map[string]float64{}
	for i, n := range names {
		byName[n] = vec[i]
	}
	// 24000 / 24 months / 5000 monthly income
	assert.InDelta(t, 0.2, byName["InstallmentBurden"], 1e-12)
	assert.Equal(t, 1.0, byName["HighUtilization"])
	assert.Equal(t, 1.0, byName["RepeatLatePayer"])
}

func TestVectorizeOneHot(t *testing.T) {
	t.Parallel()

	vec, names := Vectorize(sampleApplicant())
	var empHot, houseHot int
	for i, n := range names {
		if len(n) > 4 && n[:4] == "Emp_" && vec[i] == 1 {
			empHot++
			assert.Equal(t, "Emp_self_employed", n)
		}
		if len(n) > 8 && n[:8] == "Housing_" && vec[i] == 1 {
			houseHot++
			assert.Equal(t, "Housing_rent", n)
		}
	}
	assert.Equal(t, 1, empHot)
	assert.Equal(t, 1, houseHot)
}

func TestVectorizeZeroIncome(t *testing.T) {
	t.Parallel()

	a := sampleApplicant()
	a.Income = 0
	vec, names := Vectorize(a)
	for i, n := range names {
		if n == "InstallmentBurden" {
			assert.Equal(t, 0.0, vec[i])
		}
	}
}
