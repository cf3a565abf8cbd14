package currencypkg

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	testCases := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "Integer", amount: "500", want: "₱500.00"},
		{name: "Zero", amount: "0", want: "₱0.00"},
		{name: "Cents", amount: "123.4", want: "₱123.40"},
		{name: "Rounded", amount: "99.999", want: "₱100.00"},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Format(PHP, decimal.RequireFromString(tc.amount)))
		})
	}
}
