package marketdex

import (
	bCtx "github.com/solmart/goapi/base/ctx"
	"github.com/solmart/goapi/domain"
	"github.com/solmart/goapi/domain/listing"
)

// listingAdapter exposes a remote index api as listing.Usecase so the
// lifecycle pipelines can run in a process that has no mongo access
type listingAdapter struct {
	client Client
}

func NewListingUsecase(client Client) listing.Usecase {
	return &listingAdapter{client: client}
}

func (a *listingAdapter) GetAll(c bCtx.Ctx) ([]*listing.Listing, error) {
	return a.client.GetNfts(c)
}

func (a *listingAdapter) GetListed(c bCtx.Ctx) ([]*listing.Listing, error) {
	return a.client.GetListedNfts(c)
}

func (a *listingAdapter) GetByOwner(c bCtx.Ctx, owner domain.Address) ([]*listing.Listing, error) {
	return a.client.GetNftsByOwner(c, owner)
}

func (a *listingAdapter) Get(c bCtx.Ctx, mint domain.Address) (*listing.Listing, error) {
	return a.client.GetNft(c, mint)
}

func (a *listingAdapter) Register(c bCtx.Ctx, mint, owner domain.Address) (*listing.Listing, error) {
	if err := a.client.MintNft(c, mint, owner); err != nil {
		return nil, err
	}
	return &listing.Listing{Mint: mint, Owner: owner, Price: 0, Listed: false}, nil
}

func (a *listingAdapter) MarkListed(c bCtx.Ctx, mint domain.Address, price uint64) error {
	return a.client.ListNft(c, mint, price)
}

func (a *listingAdapter) MarkSold(c bCtx.Ctx, mint, newOwner domain.Address) error {
	return a.client.UpdateNft(c, mint, newOwner)
}

func (a *listingAdapter) Overwrite(c bCtx.Ctx, value *listing.Listing) error {
	// the rest surface has no single replace operation, replay the row
	// through the mutating endpoints instead
	if _, err := a.client.GetNft(c, value.Mint); err == domain.ErrNotFound {
		if err := a.client.MintNft(c, value.Mint, value.Owner); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}
	if err := a.client.UpdateNft(c, value.Mint, value.Owner); err != nil {
		return err
	}
	if value.Listed {
		return a.client.ListNft(c, value.Mint, value.Price)
	}
	return nil
}
