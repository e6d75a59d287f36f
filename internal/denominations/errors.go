package denominations

import (
	"errors"
	"fmt"
)

var (
	// ErrNonPositiveTarget is returned when the requested amount is zero or negative.
	ErrNonPositiveTarget = errors.New("target amount must be positive")
	// ErrTotalOverflow is returned when a selection sums past the int range.
	ErrTotalOverflow = errors.New("selection total overflows")
)

// Reasons carried by InvalidDenominationError.
const (
	ReasonUnknownNote   = "not in the note schedule"
	ReasonNegativeCount = "negative count"
)

// MismatchError reports a selection whose total differs from the target.
type MismatchError struct {
	Total  int
	Target int
}

func (e *MismatchError) Error() string {
	return Format(Result{Target: e.Target, Total: e.Total})
}

// InvalidDenominationError reports a count for a note outside the schedule,
// or a negative count.
type InvalidDenominationError struct {
	Denomination Denomination
	Count        int
	Reason       string
}

func (e *InvalidDenominationError) Error() string {
	if e.Reason == ReasonNegativeCount {
		return fmt.Sprintf("invalid denomination $%d: %s %d", e.Denomination, e.Reason, e.Count)
	}
	return fmt.Sprintf("invalid denomination $%d: %s", e.Denomination, e.Reason)
}

// UnsatisfiableTargetError reports an amount no combination of notes can make.
type UnsatisfiableTargetError struct {
	Target int
}

func (e *UnsatisfiableTargetError) Error() string {
	return fmt.Sprintf("amount $%d cannot be dispensed with the available notes", e.Target)
}
