package usecase

import (
	"github.com/solmart/goapi/base/ctx"
	"github.com/solmart/goapi/base/log"
	"github.com/solmart/goapi/base/ptr"
	"github.com/solmart/goapi/domain"
	"github.com/solmart/goapi/domain/listing"
)

type impl struct {
	repo listing.Repo
}

// New creates new listing usecase
func New(repo listing.Repo) listing.Usecase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) GetAll(c ctx.Ctx) ([]*listing.Listing, error) {
	return im.repo.FindAll(c)
}

func (im *impl) GetListed(c ctx.Ctx) ([]*listing.Listing, error) {
	return im.repo.FindAll(c, listing.WithListed(true))
}

func (im *impl) GetByOwner(c ctx.Ctx, owner domain.Address) ([]*listing.Listing, error) {
	return im.repo.FindAll(c, listing.WithOwner(owner))
}

func (im *impl) Get(c ctx.Ctx, mint domain.Address) (*listing.Listing, error) {
	return im.repo.FindOne(c, mint)
}

func (im *impl) Register(c ctx.Ctx, mint, owner domain.Address) (*listing.Listing, error) {
	// fresh rows are always unlisted, the listed flag is only ever set after
	// a confirmed list transaction
	row := &listing.Listing{
		Mint:   mint,
		Owner:  owner,
		Price:  0,
		Listed: false,
	}
	if err := im.repo.Create(c, row); err != nil {
		c.WithFields(log.Fields{
			"mint":  mint,
			"owner": owner,
			"err":   err,
		}).Error("repo.Create failed")
		return nil, err
	}
	return row, nil
}

func (im *impl) MarkListed(c ctx.Ctx, mint domain.Address, price uint64) error {
	if price == 0 {
		return domain.ErrInvalidPrice
	}
	if err := im.repo.Patch(c, mint, listing.Patchable{
		Price:  ptr.Uint64(price),
		Listed: ptr.Bool(true),
	}); err != nil {
		c.WithFields(log.Fields{
			"mint":  mint,
			"price": price,
			"err":   err,
		}).Error("repo.Patch failed")
		return err
	}
	return nil
}

func (im *impl) MarkSold(c ctx.Ctx, mint, newOwner domain.Address) error {
	if err := im.repo.Patch(c, mint, listing.Patchable{
		Owner:  newOwner.Ptr(),
		Price:  ptr.Uint64(0),
		Listed: ptr.Bool(false),
	}); err != nil {
		c.WithFields(log.Fields{
			"mint":     mint,
			"newOwner": newOwner,
			"err":      err,
		}).Error("repo.Patch failed")
		return err
	}
	return nil
}

func (im *impl) Overwrite(c ctx.Ctx, value *listing.Listing) error {
	if err := im.repo.Upsert(c, value); err != nil {
		c.WithFields(log.Fields{
			"mint": value.Mint,
			"err":  err,
		}).Error("repo.Upsert failed")
		return err
	}
	return nil
}
