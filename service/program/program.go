package program

import (
	"github.com/gagliardetto/solana-go"

	"github.com/solmart/goapi/base/ctx"
	"github.com/solmart/goapi/domain"
)

// ListedNftAccount mirrors the on-chain listing account, borsh encoded
// behind the 8-byte anchor discriminator.
type ListedNftAccount struct {
	Owner solana.PublicKey
	Mint  solana.PublicKey
	Price uint64
}

// Client is the facade over the marketplace program. Builders return a single
// instruction each; callers compose, submit and await confirmation explicitly.
// Signer sets are explicit, nothing signs on the caller's behalf.
type Client interface {
	// MintNft creates the token mint and the authority's associated token
	// account holding the single token. `mint` and `authority` both sign.
	MintNft(c ctx.Ctx, mint, authority solana.PublicKey) (solana.Instruction, error)

	// CreateMetadata attaches metaplex metadata and master edition to the
	// mint. `mint` and `authority` both sign.
	CreateMetadata(c ctx.Ctx, mint, authority solana.PublicKey, title, uri string) (solana.Instruction, error)

	// ListNft escrows the token into the listing PDA at the given price in
	// lamports. `owner` signs. Price must be positive.
	ListNft(c ctx.Ctx, mint, owner solana.PublicKey, price uint64) (solana.Instruction, error)

	// BuyNft transfers lamports to the seller, releases the token to the
	// buyer and closes the listing account. `buyer` signs.
	BuyNft(c ctx.Ctx, mint, buyer, seller solana.PublicKey) (solana.Instruction, error)

	// Submit signs with the provided keys and sends the transaction.
	// It does not wait for confirmation.
	Submit(c ctx.Ctx, instructions []solana.Instruction, payer solana.PublicKey, signers []solana.PrivateKey) (domain.TxSignature, error)

	// AwaitConfirmation polls the signature status until the ledger confirms
	// or rejects the transaction, or the context is done.
	AwaitConfirmation(c ctx.Ctx, sig domain.TxSignature) error

	// GetListingAccount reads and decodes the listing PDA for the mint.
	// Returns domain.ErrListingNotFound if the account does not exist.
	GetListingAccount(c ctx.Ctx, mint solana.PublicKey) (*ListedNftAccount, error)

	// GetBalance returns the lamport balance of the account.
	GetBalance(c ctx.Ctx, pubkey solana.PublicKey) (domain.Lamports, error)

	// GetTokenAccountBalance returns the token amount held by the associated
	// token account.
	GetTokenAccountBalance(c ctx.Ctx, ata solana.PublicKey) (uint64, error)

	// GetTokenAccountOwner returns the wallet currently holding the
	// 1-supply token of the mint.
	GetTokenAccountOwner(c ctx.Ctx, mint solana.PublicKey) (solana.PublicKey, error)
}
