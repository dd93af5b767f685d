package listing

import (
	"github.com/solmart/goapi/base/ctx"
	"github.com/solmart/goapi/domain"
)

// State is the lifecycle state of one mint as seen by a single client.
// Pending states exist only while a pipeline is in flight, the index is
// never written while in a pending state.
type State uint8

const (
	StateUnlisted State = iota
	StateListingPending
	StateListed
	StateBuyingPending
)

func (s State) String() string {
	switch s {
	case StateUnlisted:
		return "unlisted"
	case StateListingPending:
		return "listing-pending"
	case StateListed:
		return "listed"
	case StateBuyingPending:
		return "buying-pending"
	}
	return "unknown"
}

// MintResult reports a finished mint pipeline
type MintResult struct {
	Mint      domain.Address
	Signature domain.TxSignature
}

// Coordinator drives the two phase list and buy pipelines, submitting
// the on-chain instruction first and reconciling the index only after
// the ledger confirmed
type Coordinator interface {
	MintNft(c ctx.Ctx, wallet *domain.Wallet, title, uri string) (*MintResult, error)
	List(c ctx.Ctx, wallet *domain.Wallet, mint domain.Address, price uint64) error
	Buy(c ctx.Ctx, wallet *domain.Wallet, mint domain.Address) error
	// Refresh overwrites the index row with ledger truth
	Refresh(c ctx.Ctx, mint domain.Address) (*Listing, error)
	// StateOf reports the client-local lifecycle state of a mint
	StateOf(c ctx.Ctx, mint domain.Address) State
}
