package data

type Applicant struct {
	ApplicantID  string  `json:"applicant_id"`
	Age          int     `json:"age"`
	Income       float64 `json:"income"`
	LoanAmount   float64 `json:"loan_amount"`
	TermMonths   int     `json:"term_months"`
	LatePayments int     `json:"late_payments"`
	Utilization  float64 `json:"utilization"`
	Employment   string  `json:"employment"`
	Housing      string  `json:"housing"`
	Default      int     `json:"default"`
}
