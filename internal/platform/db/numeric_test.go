package db

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNumericRoundTrip(t *testing.T) {
	for _, raw := range []string{"0", "100", "-42.5", "0.01", "19999999999.99"} {
		d := decimal.RequireFromString(raw)
		got := Decimal(Numeric(d))
		require.True(t, got.Equal(d), "round trip of %s produced %s", raw, got)
	}
}

func TestDecimalOfNullIsZero(t *testing.T) {
	require.True(t, Decimal(pgtype.Numeric{}).IsZero())
}
