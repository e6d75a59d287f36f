// Package denominations resolves cash withdrawal amounts into note breakdowns
// over the kiosk's fixed note schedule.
//
// Everything in this package is pure: no I/O, no shared state. A Schedule can
// be used from any number of goroutines at once.
package denominations

import (
	"math"
	"sort"
)

// Denomination is the face value of a note in whole currency units.
type Denomination int

// Schedule is the set of notes a kiosk can dispense, largest first.
type Schedule []Denomination

// Notes is the schedule loaded in the kiosk cassettes.
var Notes = Schedule{1000, 100, 50, 10, 5, 2}

// Selection maps a note to the number of notes of that value.
type Selection map[Denomination]int

// Contains reports whether d is one of the schedule's notes.
func (s Schedule) Contains(d Denomination) bool {
	for _, n := range s {
		if n == d {
			return true
		}
	}
	return false
}

// Empty returns a selection with every note of the schedule set to zero.
func (s Schedule) Empty() Selection {
	sel := make(Selection, len(s))
	for _, d := range s {
		sel[d] = 0
	}
	return sel
}

// Complete returns a copy of sel with missing schedule notes filled in as zero.
// It does not validate sel.
func (s Schedule) Complete(sel Selection) Selection {
	out := s.Empty()
	for d, c := range sel {
		out[d] = c
	}
	return out
}

// Total sums sel over the schedule.
// It fails with *InvalidDenominationError on a note outside the schedule or a
// negative count, and with ErrTotalOverflow if the sum does not fit an int.
func (s Schedule) Total(sel Selection) (int, error) {
	keys := make([]Denomination, 0, len(sel))
	for d := range sel {
		keys = append(keys, d)
	}
	// deterministic error reporting
	sort.Slice(keys, func(i, j int) bool { return keys[i] > keys[j] })

	total := 0
	for _, d := range keys {
		count := sel[d]
		if !s.Contains(d) {
			return 0, &InvalidDenominationError{Denomination: d, Count: count, Reason: ReasonUnknownNote}
		}
		if count < 0 {
			return 0, &InvalidDenominationError{Denomination: d, Count: count, Reason: ReasonNegativeCount}
		}
		if count > 0 && count > (math.MaxInt-total)/int(d) {
			return 0, ErrTotalOverflow
		}
		total += int(d) * count
	}
	return total, nil
}

// Validate checks that sel adds up to exactly target.
//
// The returned error is reserved for caller mistakes (non-positive target,
// unknown notes, negative counts). A selection that simply sums to the wrong
// amount is not an error: it comes back as an invalid Result.
func (s Schedule) Validate(target int, sel Selection) (Result, error) {
	if target <= 0 {
		return Result{}, ErrNonPositiveTarget
	}
	total, err := s.Total(sel)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Target:    target,
		Total:     total,
		Selection: s.Complete(sel),
	}, nil
}

// Divides reports, for every adjacent pair of the schedule, whether the
// smaller note evenly divides the larger one. Entry i describes s[i] and s[i+1].
func (s Schedule) Divides() []bool {
	notes := s.descending()
	if len(notes) < 2 {
		return nil
	}
	out := make([]bool, len(notes)-1)
	for i := 0; i+1 < len(notes); i++ {
		out[i] = notes[i]%notes[i+1] == 0
	}
	return out
}

// Canonical reports whether every note divides the next larger one. For such
// schedules plain greedy breakdown never needs to back off.
func (s Schedule) Canonical() bool {
	for _, ok := range s.Divides() {
		if !ok {
			return false
		}
	}
	return true
}

func (s Schedule) descending() Schedule {
	out := make(Schedule, len(s))
	copy(out, s)
	sort.Slice(out, func(i, j int) bool { return out[i] > out[j] })
	return out
}

// Validate checks sel against target over the kiosk note schedule.
func Validate(target int, sel Selection) (Result, error) {
	return Notes.Validate(target, sel)
}

// Suggest breaks target down over the kiosk note schedule.
func Suggest(target int) (Selection, error) {
	return Notes.Suggest(target)
}
