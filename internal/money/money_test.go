package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfava/shoproll/internal/money"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "NoChange", in: "12.34", want: "12.34"},
		{name: "HalfToEvenDown", in: "2.345", want: "2.34"},
		{name: "HalfToEvenUp", in: "2.355", want: "2.36"},
		{name: "Negative", in: "-1.005", want: "-1.00"},
		{name: "ManyPlaces", in: "0.114999", want: "0.11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := decimal.RequireFromString(tt.in)
			assert.Equal(t, tt.want, money.String(money.Round(d)))
		})
	}
}

func TestParse(t *testing.T) {
	d, err := money.Parse("150.00")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromInt(150)))

	_, err = money.Parse("not-a-number")
	assert.Error(t, err)
}

func TestMax(t *testing.T) {
	a := decimal.NewFromInt(3)
	b := decimal.NewFromInt(7)
	assert.True(t, money.Max(a, b).Equal(b))
	assert.True(t, money.Max(b, a).Equal(b))
}
