package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositive(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "whole", in: "100", want: "100"},
		{name: "rounds to cents", in: "12.345", want: "12.35"},
		{name: "rounds to zero", in: "0.004", wantErr: true},
		{name: "zero", in: "0", wantErr: true},
		{name: "negative", in: "-5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Positive(decimal.RequireFromString(tt.in))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNonPositiveAmount)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestConvert(t *testing.T) {
	got := Convert(decimal.NewFromInt(100), 0.7412)
	assert.Equal(t, "74.12", got.StringFixed(2))

	got = Convert(decimal.RequireFromString("33.33"), 1.5)
	assert.Equal(t, "50.00", got.StringFixed(2))
}

func TestTenths(t *testing.T) {
	// 187.5 * 1.35 * 3
	got := Tenths(decimal.RequireFromString("187.5").Mul(decimal.RequireFromString("1.35")).Mul(decimal.NewFromInt(3)))
	assert.Equal(t, "759.4", got.String())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "$12.50", Format(decimal.RequireFromString("12.5")))
	assert.Equal(t, "$0.00", Format(decimal.Zero))
	assert.Equal(t, "-$3.10", Format(decimal.RequireFromString("-3.1")))
	assert.Equal(t, "$1000.00", Format(FromUnits(1000)))
}
