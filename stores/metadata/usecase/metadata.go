package usecase

import (
	"encoding/json"
	"net/url"
	"time"

	bCtx "github.com/solmart/goapi/base/ctx"
	"github.com/solmart/goapi/base/log"
	"github.com/solmart/goapi/domain"
	"github.com/solmart/goapi/domain/keys"
	"github.com/solmart/goapi/service/cache"
	"github.com/solmart/goapi/service/cache/provider"
	"github.com/solmart/goapi/service/cache/provider/compound"
	"github.com/solmart/goapi/service/cache/provider/primitive"
	redisCache "github.com/solmart/goapi/service/cache/provider/redis"
	"github.com/solmart/goapi/service/redis"
)

type MetadataUseCaseCfg struct {
	HttpReader domain.WebResourceReaderRepository
	Redis      redis.Service
}

type metadataUseCase struct {
	httpReader    domain.WebResourceReaderRepository
	metadataCache cache.Service
}

func NewMetadataUseCase(cfg *MetadataUseCaseCfg) domain.MetadataUseCase {
	cacheProviders := []provider.Provider{
		primitive.NewPrimitive(keys.PfxMetadata, 64),
	}
	if cfg.Redis != nil {
		cacheProviders = append(cacheProviders, redisCache.NewRedis(cfg.Redis))
	}
	return &metadataUseCase{
		httpReader: cfg.HttpReader,
		metadataCache: cache.New(cache.ServiceConfig{
			Ttl:   10 * time.Minute,
			Pfx:   keys.PfxMetadata,
			Cache: compound.NewCompound(cacheProviders),
		}),
	}
}

func (u *metadataUseCase) GetFromUri(c bCtx.Ctx, rawUri string) (*domain.Metadata, error) {
	metadata := &domain.Metadata{}
	err := u.metadataCache.GetByFunc(c, rawUri, metadata, func() (interface{}, error) {
		return u.getFromUri(c, rawUri)
	})
	if err != nil {
		return nil, err
	}
	return metadata, nil
}

func (u *metadataUseCase) getFromUri(c bCtx.Ctx, rawUri string) (*domain.Metadata, error) {
	pUri, err := url.Parse(rawUri)
	if err != nil {
		c.WithFields(log.Fields{
			"uri": rawUri,
			"err": err,
		}).Error("failed to parse uri")
		return nil, err
	}

	if pUri.Scheme != "https" && pUri.Scheme != "http" {
		return nil, domain.ErrUnsupportedScheme
	}

	data, err := u.httpReader.Get(c, rawUri)
	if err != nil {
		// a dead uri should not break the render path
		c.WithFields(log.Fields{
			"uri": rawUri,
			"err": err,
		}).Warn("failed to fetch, degrading to placeholder")
		placeholder := domain.PlaceholderMetadata
		return &placeholder, nil
	}

	metadata := &domain.Metadata{}
	if err := json.Unmarshal(data, metadata); err != nil {
		c.WithField("uri", rawUri).Warn("invalid json, degrading to placeholder")
		placeholder := domain.PlaceholderMetadata
		return &placeholder, nil
	}
	return metadata, nil
}
