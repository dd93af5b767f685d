package pricefmt

import (
	"github.com/shopspring/decimal"
	"github.com/solmart/goapi/domain"
)

const solDecimals = 9

var lamportsPerSol = decimal.New(1, solDecimals)

// FromLamports returns the display price in SOL for a lamport amount.
func FromLamports(lamports domain.Lamports) decimal.Decimal {
	return decimal.New(int64(lamports), 0).Shift(-solDecimals)
}

// ToLamports converts a display price in SOL to lamports.
// Fractions below one lamport are rejected rather than silently truncated.
func ToLamports(displayPrice decimal.Decimal) (domain.Lamports, error) {
	if displayPrice.IsNegative() {
		return 0, domain.ErrInvalidPrice
	}
	scaled := displayPrice.Mul(lamportsPerSol)
	if !scaled.Equal(scaled.Truncate(0)) {
		return 0, domain.ErrInvalidPrice
	}
	return domain.Lamports(scaled.IntPart()), nil
}

// ParseToLamports converts a display price string in SOL to lamports.
func ParseToLamports(displayPrice string) (domain.Lamports, error) {
	d, err := decimal.NewFromString(displayPrice)
	if err != nil {
		return 0, domain.ErrInvalidPrice
	}
	return ToLamports(d)
}
