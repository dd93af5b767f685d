package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/solmart/goapi/base/ctx"
	"github.com/solmart/goapi/base/database/mongoclient"
	"github.com/solmart/goapi/base/log"
	"github.com/solmart/goapi/domain"
	"github.com/solmart/goapi/domain/keys"
	"github.com/solmart/goapi/domain/listing"
	"github.com/solmart/goapi/service/cache"
	"github.com/solmart/goapi/service/cache/provider"
	"github.com/solmart/goapi/service/cache/provider/compound"
	"github.com/solmart/goapi/service/cache/provider/primitive"
	redisCache "github.com/solmart/goapi/service/cache/provider/redis"
	"github.com/solmart/goapi/service/query"
	"github.com/solmart/goapi/service/redis"
)

type impl struct {
	query        query.Mongo
	listingCache cache.Service
}

// New creates new listing repo
func New(query query.Mongo, redis redis.Service) listing.Repo {
	cacheProviders := []provider.Provider{
		primitive.NewPrimitive(keys.PfxListing, 64),
	}

	if redis != nil {
		cacheProviders = append(cacheProviders, redisCache.NewRedis(redis))
	}

	return &impl{
		query: query,
		listingCache: cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   keys.PfxListing,
			Cache: compound.NewCompound(cacheProviders),
		}),
	}
}

func (im *impl) Create(c ctx.Ctx, value *listing.Listing) error {
	if err := im.query.Insert(c, domain.TableListings, value); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"mint": value.Mint,
			"err":  err,
		}).Error("insert listing failed")
		return err
	}
	return nil
}

func (im *impl) FindOne(c ctx.Ctx, mint domain.Address) (*listing.Listing, error) {
	res := &listing.Listing{}

	if err := im.listingCache.GetByFunc(c, string(mint), res, func() (interface{}, error) {
		return im.findOne(c, mint)
	}); err != nil {
		if err != domain.ErrNotFound {
			c.WithFields(log.Fields{
				"mint": mint,
				"err":  err,
			}).Error("listingCache.GetByFunc failed")
		}
		return nil, err
	}

	return res, nil
}

func (im *impl) findOne(c ctx.Ctx, mint domain.Address) (*listing.Listing, error) {
	row := &listing.Listing{}
	err := im.query.FindOne(c, domain.TableListings, bson.M{"mint": mint}, row)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"mint": mint,
			"err":  err,
		}).Error("find listing failed")
		return nil, err
	}
	return row, nil
}

func (im *impl) FindAll(c ctx.Ctx, opts ...listing.FindAllOptions) ([]*listing.Listing, error) {
	options, err := listing.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}

	qry, err := mongoclient.MakeBsonM(options)
	if err != nil {
		c.WithField("err", err).Error("make bsonM failed")
		return nil, err
	}

	rows := []*listing.Listing{}
	if err := im.query.Search(c, domain.TableListings, 0, 0, "mint", qry, &rows); err != nil {
		c.WithField("err", err).Error("search listings failed")
		return nil, err
	}
	return rows, nil
}

func (im *impl) Patch(c ctx.Ctx, mint domain.Address, patchable listing.Patchable) error {
	patchBson, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		c.WithFields(log.Fields{
			"mint": mint,
			"err":  err,
		}).Error("make bsonM failed")
		return err
	}

	if err := im.query.Patch(c, domain.TableListings, bson.M{"mint": mint}, patchBson); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"mint": mint,
			"err":  err,
		}).Error("patch listing failed")
		return err
	}

	return im.invalidate(c, mint)
}

func (im *impl) Upsert(c ctx.Ctx, value *listing.Listing) error {
	if err := im.query.Upsert(c, domain.TableListings, bson.M{"mint": value.Mint}, value); err != nil {
		c.WithFields(log.Fields{
			"mint": value.Mint,
			"err":  err,
		}).Error("upsert listing failed")
		return err
	}
	return im.invalidate(c, value.Mint)
}

func (im *impl) invalidate(c ctx.Ctx, mint domain.Address) error {
	if err := im.listingCache.Del(c, string(mint)); err != nil {
		c.WithFields(log.Fields{
			"mint": mint,
			"err":  err,
		}).Error("listingCache.Del failed")
	}
	return nil
}
