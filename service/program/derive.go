package program

import (
	"github.com/gagliardetto/solana-go"
)

const (
	marketplaceSeed = "NFT_MARKETPLACE_EMSKIQ"
	listingSeed     = "LISTED_NFT_EMSKIQ_SEED"

	metadataSeed      = "metadata"
	masterEditionSeed = "edition"
)

var (
	// MarketplaceProgramID is the deployed marketplace program
	MarketplaceProgramID = solana.MustPublicKeyFromBase58("hPd5fM2UuWmU36aE1Cx3HmhScY9fWFswVwe53R2HWZs")

	// TokenMetadataProgramID is the metaplex token metadata program
	TokenMetadataProgramID = solana.MustPublicKeyFromBase58("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")
)

// DeriveMarketplaceAddress returns the program's own authority PDA.
func DeriveMarketplaceAddress() (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(
		[][]byte{[]byte(marketplaceSeed)},
		MarketplaceProgramID,
	)
	return addr, err
}

// DeriveListingAddress returns the listing PDA for a mint. The derivation is
// pure, the same mint always maps to the same address.
func DeriveListingAddress(mint solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(
		[][]byte{[]byte(listingSeed), mint.Bytes()},
		MarketplaceProgramID,
	)
	return addr, err
}

// DeriveMetadataAddress returns the metaplex metadata PDA for a mint.
func DeriveMetadataAddress(mint solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(
		[][]byte{
			[]byte(metadataSeed),
			TokenMetadataProgramID.Bytes(),
			mint.Bytes(),
		},
		TokenMetadataProgramID,
	)
	return addr, err
}

// DeriveMasterEditionAddress returns the metaplex master edition PDA for a mint.
func DeriveMasterEditionAddress(mint solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(
		[][]byte{
			[]byte(metadataSeed),
			TokenMetadataProgramID.Bytes(),
			mint.Bytes(),
			[]byte(masterEditionSeed),
		},
		TokenMetadataProgramID,
	)
	return addr, err
}

// DeriveAssociatedTokenAddress returns the wallet's associated token account
// for a mint.
func DeriveAssociatedTokenAddress(wallet, mint solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindAssociatedTokenAddress(wallet, mint)
	return addr, err
}
