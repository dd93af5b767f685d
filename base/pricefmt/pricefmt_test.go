package pricefmt

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/solmart/goapi/domain"
)

func TestFromLamports(t *testing.T) {
	assert.Equal(t, "0.5", FromLamports(500000000).String())
	assert.Equal(t, "1", FromLamports(1000000000).String())
	assert.Equal(t, "0.000000001", FromLamports(1).String())
	assert.Equal(t, "0", FromLamports(0).String())
}

func TestToLamports(t *testing.T) {
	l, err := ToLamports(decimal.RequireFromString("0.5"))
	assert.NoError(t, err)
	assert.Equal(t, domain.Lamports(500000000), l)

	_, err = ToLamports(decimal.RequireFromString("-1"))
	assert.Equal(t, domain.ErrInvalidPrice, err)

	// below one lamport
	_, err = ToLamports(decimal.RequireFromString("0.0000000001"))
	assert.Equal(t, domain.ErrInvalidPrice, err)
}

func TestParseToLamports(t *testing.T) {
	l, err := ParseToLamports("2.25")
	assert.NoError(t, err)
	assert.Equal(t, domain.Lamports(2250000000), l)

	_, err = ParseToLamports("not-a-number")
	assert.Equal(t, domain.ErrInvalidPrice, err)
}
