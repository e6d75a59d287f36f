package denominations

import "fmt"

// Result is the outcome of checking a selection against a target amount.
type Result struct {
	Target    int       `json:"target"`
	Total     int       `json:"total"`
	Selection Selection `json:"denominations"`
}

// Valid reports whether the selection sums to exactly the target.
func (r Result) Valid() bool {
	return r.Target > 0 && r.Total == r.Target
}

// Err returns nil for a valid result and a *MismatchError otherwise.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return &MismatchError{Total: r.Total, Target: r.Target}
}

// Message renders the result for display on the kiosk.
func (r Result) Message() string {
	return Format(r)
}

// Format renders a result as a diagnostic line, e.g.
// "Total must be exactly $500. Current total: $480."
func Format(r Result) string {
	if r.Valid() {
		return fmt.Sprintf("Total: $%d.", r.Total)
	}
	return fmt.Sprintf("Total must be exactly $%d. Current total: $%d.", r.Target, r.Total)
}
