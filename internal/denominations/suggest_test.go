package denominations

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// greedy is plain largest-first breakdown without backing off.
func greedy(s Schedule, target int) (Selection, int) {
	sel := s.Empty()
	remaining := target
	for _, d := range s.descending() {
		sel[d] = remaining / int(d)
		remaining -= sel[d] * int(d)
	}
	return sel, remaining
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name   string
		target int
		want   Selection
	}{
		{
			name:   "greedy largest first",
			target: 280,
			want:   Selection{1000: 0, 100: 2, 50: 1, 10: 3, 5: 0, 2: 0},
		},
		{
			name:   "odd amount through the five",
			target: 7,
			want:   Selection{1000: 0, 100: 0, 50: 0, 10: 0, 5: 1, 2: 1},
		},
		{
			name:   "backs off the five",
			target: 6,
			want:   Selection{1000: 0, 100: 0, 50: 0, 10: 0, 5: 0, 2: 3},
		},
		{
			name:   "backs off the five again",
			target: 18,
			want:   Selection{1000: 0, 100: 0, 50: 0, 10: 1, 5: 0, 2: 4},
		},
		{
			name:   "thousands",
			target: 3150,
			want:   Selection{1000: 3, 100: 1, 50: 1, 10: 0, 5: 0, 2: 0},
		},
		{
			name:   "backs off above the tail",
			target: 501,
			want:   Selection{1000: 0, 100: 4, 50: 1, 10: 4, 5: 1, 2: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Suggest(tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			res, err := Validate(tt.target, got)
			require.NoError(t, err)
			assert.True(t, res.Valid())
		})
	}
}

func TestSuggest_Unsatisfiable(t *testing.T) {
	for _, target := range []int{1, 3} {
		got, err := Suggest(target)
		assert.Nil(t, got)

		var unsat *UnsatisfiableTargetError
		require.True(t, errors.As(err, &unsat), "target %d", target)
		assert.Equal(t, target, unsat.Target)
	}
}

func TestSuggest_NonPositiveTarget(t *testing.T) {
	for _, target := range []int{0, -2} {
		_, err := Suggest(target)
		assert.ErrorIs(t, err, ErrNonPositiveTarget)
	}
}

// Every amount from 4 up can be paid with 5s and 2s, so only 1 and 3 fail.
func TestSuggest_RoundTrip(t *testing.T) {
	for target := 1; target <= 5000; target++ {
		sel, err := Suggest(target)
		if target == 1 || target == 3 {
			assert.Error(t, err, "target %d", target)
			continue
		}
		require.NoError(t, err, "target %d", target)

		res, err := Validate(target, sel)
		require.NoError(t, err)
		require.True(t, res.Valid(), "target %d got %v", target, sel)
		assert.Len(t, sel, len(Notes))
	}
}

func TestSuggest_MatchesGreedyWhenGreedyPays(t *testing.T) {
	for target := 1; target <= 5000; target++ {
		want, rest := greedy(Notes, target)
		if rest != 0 {
			continue
		}
		got, err := Suggest(target)
		require.NoError(t, err)
		assert.Equal(t, want, got, "target %d", target)
	}
}

func TestSuggest_LargeAmount(t *testing.T) {
	sel, err := Suggest(1_000_003)
	require.NoError(t, err)

	total, err := Notes.Total(sel)
	require.NoError(t, err)
	assert.Equal(t, 1_000_003, total)
	assert.Equal(t, 999, sel[1000])
}

func TestSuggest_OtherSchedules(t *testing.T) {
	s := Schedule{6, 4}

	sel, err := s.Suggest(10)
	require.NoError(t, err)
	assert.Equal(t, Selection{6: 1, 4: 1}, sel)

	sel, err = s.Suggest(8)
	require.NoError(t, err)
	assert.Equal(t, Selection{6: 0, 4: 2}, sel)

	_, err = s.Suggest(9)
	var unsat *UnsatisfiableTargetError
	assert.True(t, errors.As(err, &unsat))

	// canonical schedules never back off
	c := Schedule{100, 50, 10}
	for target := 10; target <= 2000; target += 10 {
		want, rest := greedy(c, target)
		require.Zero(t, rest)
		got, err := c.Suggest(target)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
