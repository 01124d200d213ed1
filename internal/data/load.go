package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// Columns expected in the input CSV besides the outcome column.
var featureColumns = []string{
	"applicant_id", "age", "income", "loan_amount", "term_months",
	"late_payments", "utilization", "employment", "housing",
}

// Dataset holds the parsed records and their binary outcome labels,
// in CSV row order.
type Dataset struct {
	Applicants  []Applicant
	Labels      []int
	LabelColumn string
}

// Load reads a CSV with a header row and parses it into typed records.
// labelColumn names the binary-outcome column; values must be 0 or 1.
func Load(path, labelColumn string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("dataset %s has no data rows", path)
	}

	col := map[string]int{}
	for i, name := range rows[0] {
		col[name] = i
	}
	for _, name := range featureColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("dataset %s is missing column %q", path, name)
		}
	}
	labelIdx, ok := col[labelColumn]
	if !ok {
		return nil, fmt.Errorf("dataset %s has no outcome column %q", path, labelColumn)
	}

	ds := &Dataset{
		Applicants:  make([]Applicant, 0, len(rows)-1),
		Labels:      make([]int, 0, len(rows)-1),
		LabelColumn: labelColumn,
	}
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		a, err := parseRow(row, col)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		label := row[labelIdx]
		if label != "0" && label != "1" {
			return nil, fmt.Errorf("row %d: outcome %q in column %q is not binary", i+1, label, labelColumn)
		}
		a.Default = int(label[0] - '0')
		ds.Applicants = append(ds.Applicants, a)
		ds.Labels = append(ds.Labels, a.Default)
	}
	return ds, nil
}

func parseRow(row []string, col map[string]int) (Applicant, error) {
	var a Applicant
	var err error
	a.ApplicantID = row[col["applicant_id"]]
	if a.Age, err = strconv.Atoi(row[col["age"]]); err != nil {
		return a, fmt.Errorf("age: %w", err)
	}
	if a.Income, err = strconv.ParseFloat(row[col["income"]], 64); err != nil {
		return a, fmt.Errorf("income: %w", err)
	}
	if a.LoanAmount, err = strconv.ParseFloat(row[col["loan_amount"]], 64); err != nil {
		return a, fmt.Errorf("loan_amount: %w", err)
	}
	if a.TermMonths, err = strconv.Atoi(row[col["term_months"]]); err != nil {
		return a, fmt.Errorf("term_months: %w", err)
	}
	if a.LatePayments, err = strconv.Atoi(row[col["late_payments"]]); err != nil {
		return a, fmt.Errorf("late_payments: %w", err)
	}
	if a.Utilization, err = strconv.ParseFloat(row[col["utilization"]], 64); err != nil {
		return a, fmt.Errorf("utilization: %w", err)
	}
	a.Employment = row[col["employment"]]
	a.Housing = row[col["housing"]]
	return a, nil
}
