package program

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveListingAddressDeterminism(t *testing.T) {
	mint := solana.NewWallet().PublicKey()

	first, err := DeriveListingAddress(mint)
	require.NoError(t, err)
	second, err := DeriveListingAddress(mint)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.False(t, first.IsZero())

	// a different mint derives a different listing account
	other, err := DeriveListingAddress(solana.NewWallet().PublicKey())
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestDeriveMarketplaceAddress(t *testing.T) {
	first, err := DeriveMarketplaceAddress()
	require.NoError(t, err)
	second, err := DeriveMarketplaceAddress()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.False(t, first.IsZero())
}

func TestDeriveMetadataAddresses(t *testing.T) {
	mint := solana.NewWallet().PublicKey()

	metadata, err := DeriveMetadataAddress(mint)
	require.NoError(t, err)
	edition, err := DeriveMasterEditionAddress(mint)
	require.NoError(t, err)

	assert.NotEqual(t, metadata, edition)

	again, err := DeriveMetadataAddress(mint)
	require.NoError(t, err)
	assert.Equal(t, metadata, again)
}

func TestDeriveAssociatedTokenAddress(t *testing.T) {
	wallet := solana.NewWallet().PublicKey()
	mint := solana.NewWallet().PublicKey()

	ata, err := DeriveAssociatedTokenAddress(wallet, mint)
	require.NoError(t, err)

	again, err := DeriveAssociatedTokenAddress(wallet, mint)
	require.NoError(t, err)
	assert.Equal(t, ata, again)

	otherWallet, err := DeriveAssociatedTokenAddress(solana.NewWallet().PublicKey(), mint)
	require.NoError(t, err)
	assert.NotEqual(t, ata, otherWallet)
}
