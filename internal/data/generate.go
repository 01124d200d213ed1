package data

import (
	"encoding/csv"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
)

var employments = []string{"salaried", "self_employed", "contract", "retired", "unemployed"}
var housings = []string{"own", "mortgage", "rent"}

// Generate writes a synthetic loan-application CSV with a binary
// default label. The label mixes a base rate with risk flags so a
// classifier has real signal to find. A fixed seed reproduces the
// file byte for byte.
func Generate(n int, defaultRate float64, seed int64, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"applicant_id", "age", "income", "loan_amount", "term_months", "late_payments", "utilization", "employment", "housing", "default"}
	if err := w.Write(header); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(seed))

	for i := 0; i < n; i++ {
		age := 21 + rng.Intn(50)
		income := 1800 + rng.Float64()*10000
		loan := 1000 + rng.Float64()*40000
		term := 6 + 6*rng.Intn(10)
		late := 0
		if rng.Float64() < 0.35 {
			late = 1 + rng.Intn(8)
		}
		util := rng.Float64()
		emp := employments[rng.Intn(len(employments))]
		housing := housings[rng.Intn(len(housings))]

		// monthly installment against monthly income
		burden := loan / float64(term) / income

		score := 0.0
		flags := 0
		if burden > 0.35 {
			score += 0.3
			flags++
		}
		if late >= 3 {
			score += 0.3
			flags++
		}
		if util > 0.8 {
			score += 0.2
			flags++
		}
		if emp == "unemployed" {
			score += 0.25
			flags++
		}
		if housing == "rent" && loan > 30000 {
			score += 0.1
			flags++
		}

		label := 0
		if flags >= 3 {
			label = 1
		} else if rng.Float64() < defaultRate+score {
			label = 1
		}

		rec := []string{
			"A" + strconv.Itoa(100000+i),
			strconv.Itoa(age),
			strconv.FormatFloat(income, 'f', 2, 64),
			strconv.FormatFloat(loan, 'f', 2, 64),
			strconv.Itoa(term),
			strconv.Itoa(late),
			strconv.FormatFloat(util, 'f', 4, 64),
			emp,
			housing,
			strconv.Itoa(label),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
