package listing

import (
	"github.com/solmart/goapi/base/ctx"
	"github.com/solmart/goapi/domain"
)

// Listing is the index row of one nft, keyed by mint. The ledger is the
// source of truth, rows here are a refreshable projection of it.
type Listing struct {
	Mint   domain.Address `json:"mint" bson:"mint"`
	Owner  domain.Address `json:"owner" bson:"owner"`
	Price  uint64         `json:"price" bson:"price"`
	Listed bool           `json:"listed" bson:"listed"`
}

// Patchable carries partial updates, empty fields are skipped
type Patchable struct {
	Owner  *domain.Address `bson:"owner,omitempty"`
	Price  *uint64         `bson:"price,omitempty"`
	Listed *bool           `bson:"listed,omitempty"`
}

type findAllOptions struct {
	Owner  *domain.Address `bson:"owner,omitempty"`
	Listed *bool           `bson:"listed,omitempty"`
}

type FindAllOptions func(*findAllOptions) error

func GetFindAllOptions(opts ...FindAllOptions) (findAllOptions, error) {
	res := findAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithOwner(owner domain.Address) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Owner = &owner
		return nil
	}
}

func WithListed(listed bool) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Listed = &listed
		return nil
	}
}

type Repo interface {
	Create(c ctx.Ctx, value *Listing) error
	FindOne(c ctx.Ctx, mint domain.Address) (*Listing, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptions) ([]*Listing, error)
	Patch(c ctx.Ctx, mint domain.Address, patchable Patchable) error
	Upsert(c ctx.Ctx, value *Listing) error
}

type Usecase interface {
	GetAll(c ctx.Ctx) ([]*Listing, error)
	// GetListed returns only rows with the listed flag set, the browse view
	GetListed(c ctx.Ctx) ([]*Listing, error)
	GetByOwner(c ctx.Ctx, owner domain.Address) ([]*Listing, error)
	Get(c ctx.Ctx, mint domain.Address) (*Listing, error)
	// Register creates the row after a confirmed mint, listed=false, price=0
	Register(c ctx.Ctx, mint, owner domain.Address) (*Listing, error)
	// MarkListed is written only after the list instruction confirmed
	MarkListed(c ctx.Ctx, mint domain.Address, price uint64) error
	// MarkSold is written only after the buy instruction confirmed,
	// clears the listed flag and moves ownership
	MarkSold(c ctx.Ctx, mint, newOwner domain.Address) error
	// Overwrite replaces the row with ledger truth, used by refresh paths
	Overwrite(c ctx.Ctx, value *Listing) error
}
