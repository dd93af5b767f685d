package marketdex

import (
	"errors"
	"net/http"
	"time"

	bCtx "github.com/solmart/goapi/base/ctx"
	"github.com/solmart/goapi/domain"
	"github.com/solmart/goapi/domain/listing"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
)

// Client talks to a running listing index api over its rest surface,
// used by tooling that runs outside the api process
type Client interface {
	GetNfts(c bCtx.Ctx) ([]*listing.Listing, error)
	GetListedNfts(c bCtx.Ctx) ([]*listing.Listing, error)
	GetNftsByOwner(c bCtx.Ctx, owner domain.Address) ([]*listing.Listing, error)
	GetNft(c bCtx.Ctx, mint domain.Address) (*listing.Listing, error)
	MintNft(c bCtx.Ctx, mint, owner domain.Address) error
	ListNft(c bCtx.Ctx, mint domain.Address, price uint64) error
	UpdateNft(c bCtx.Ctx, mint, owner domain.Address) error
}

type ClientCfg struct {
	Endpoint   string
	HttpClient http.Client
	Timeout    time.Duration
}
