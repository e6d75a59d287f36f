package denominations

// Suggest breaks target down largest note first.
//
// Each note takes target div note, except when that would leave a remainder
// the smaller notes cannot make; then the count is lowered one at a time until
// the rest is reachable. With {1000,100,50,10,5,2} this only happens for the
// 5/2 tail (6 = 3x2, not 5+1), so any amount plain greedy can pay comes back
// exactly as plain greedy would pay it.
//
// The result lists every schedule note and sums to target. Amounts no
// combination can make yield *UnsatisfiableTargetError.
func (s Schedule) Suggest(target int) (Selection, error) {
	if target <= 0 {
		return nil, ErrNonPositiveTarget
	}

	notes := s.descending()
	sel := s.Empty()
	b := breakdown{notes: notes, sel: sel, dead: make(map[state]struct{})}
	if !b.fill(0, target) {
		return nil, &UnsatisfiableTargetError{Target: target}
	}
	return sel, nil
}

type state struct {
	idx       int
	remaining int
}

type breakdown struct {
	notes Schedule
	sel   Selection
	// remainders already shown unreachable from a given note onwards
	dead map[state]struct{}
}

func (b *breakdown) fill(idx, remaining int) bool {
	if remaining == 0 {
		return true
	}
	if idx == len(b.notes) {
		return false
	}
	key := state{idx: idx, remaining: remaining}
	if _, ok := b.dead[key]; ok {
		return false
	}

	d := b.notes[idx]
	if idx == len(b.notes)-1 {
		if remaining%int(d) == 0 {
			b.sel[d] = remaining / int(d)
			return true
		}
		b.dead[key] = struct{}{}
		return false
	}

	for count := remaining / int(d); count >= 0; count-- {
		if b.fill(idx+1, remaining-count*int(d)) {
			b.sel[d] = count
			return true
		}
	}
	b.dead[key] = struct{}{}
	return false
}
