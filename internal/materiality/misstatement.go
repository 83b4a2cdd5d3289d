package materiality

import "time"

// Misstatement is one identified error, known (found during the audit)
// or likely (projected from old balances, reconciliation differences).
type Misstatement struct {
	Ledger      string    `json:"ledger"`
	Description string    `json:"description,omitempty"`
	Amount      float64   `json:"amount"`
	Corrected   bool      `json:"corrected"`
	Added       time.Time `json:"date_added"`
}

// Severity classifies the uncorrected total against overall materiality.
type Severity int

const (
	// SeverityClear: uncorrected misstatements are well below materiality.
	SeverityClear Severity = iota
	// SeverityModerate: above 50% of materiality, document the consideration.
	SeverityModerate
	// SeveritySignificant: above 75%, evaluate the effect carefully.
	SeveritySignificant
	// SeverityCritical: above 90%, consider the effect on the audit opinion.
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityClear:
		return "clear"
	case SeverityModerate:
		return "moderate"
	case SeveritySignificant:
		return "significant"
	case SeverityCritical:
		return "critical"
	}
	return "unknown"
}

// Evaluation summarizes identified misstatements against materiality.
type Evaluation struct {
	KnownTotal           float64
	KnownUncorrected     float64
	LikelyTotal          float64
	LikelyUncorrected    float64
	TotalUncorrected     float64
	PercentOfMateriality float64
	Severity             Severity
}

// Evaluate totals known and likely misstatements and grades the
// uncorrected amount against overall materiality.
func Evaluate(known, likely []Misstatement, overallMateriality float64) Evaluation {
	var ev Evaluation
	for _, m := range known {
		ev.KnownTotal += m.Amount
		if !m.Corrected {
			ev.KnownUncorrected += m.Amount
		}
	}
	for _, m := range likely {
		ev.LikelyTotal += m.Amount
		if !m.Corrected {
			ev.LikelyUncorrected += m.Amount
		}
	}
	ev.TotalUncorrected = ev.KnownUncorrected + ev.LikelyUncorrected

	if overallMateriality > 0 {
		ev.PercentOfMateriality = ev.TotalUncorrected / overallMateriality * 100
	}

	switch {
	case ev.PercentOfMateriality > 90:
		ev.Severity = SeverityCritical
	case ev.PercentOfMateriality > 75:
		ev.Severity = SeveritySignificant
	case ev.PercentOfMateriality > 50:
		ev.Severity = SeverityModerate
	default:
		ev.Severity = SeverityClear
	}
	return ev
}
