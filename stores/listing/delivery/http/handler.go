package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/solmart/goapi/base/ctx"
	"github.com/solmart/goapi/base/delivery"
	"github.com/solmart/goapi/base/validator"
	"github.com/solmart/goapi/domain"
	"github.com/solmart/goapi/domain/listing"
	"github.com/solmart/goapi/middleware"
)

type handler struct {
	listing listing.Usecase
}

// New registers the listing index routes. Paths are kept stable for
// existing frontend clients.
func New(e *echo.Echo, listingUsecase listing.Usecase) {
	h := &handler{listingUsecase}

	e.GET("/get-nfts", h.GetNfts, middleware.CacheHttp(10*time.Second))
	e.GET("/get-listed-nfts", h.GetListedNfts, middleware.CacheHttp(10*time.Second))
	e.GET("/get-nfts/:owner", h.GetNftsByOwner, middleware.IsValidAddress("owner"), middleware.CacheHttp(10*time.Second))
	e.GET("/get-nft/:mint", h.GetNft, middleware.IsValidAddress("mint"))

	e.POST("/mint-nft", h.MintNft)
	e.POST("/list-nft", h.ListNft)
	e.POST("/update-nft", h.UpdateNft)
}

func (h *handler) GetNfts(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.listing.GetAll(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) GetListedNfts(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.listing.GetListed(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) GetNftsByOwner(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	owner := domain.Address(c.Param("owner"))

	res, err := h.listing.GetByOwner(ctx, owner)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) GetNft(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	mint := domain.Address(c.Param("mint"))

	res, err := h.listing.Get(ctx, mint)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) MintNft(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Mint  domain.Address `json:"mint"`
		Owner domain.Address `json:"owner"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if !validator.IsValidAddress(p.Mint.String()) || !validator.IsValidAddress(p.Owner.String()) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
	}

	// fresh rows always start unlisted regardless of what the client sent
	res, err := h.listing.Register(ctx, p.Mint, p.Owner)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) ListNft(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Mint  domain.Address `json:"mint"`
		Price uint64         `json:"price"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if !validator.IsValidAddress(p.Mint.String()) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
	}

	if err := h.listing.MarkListed(ctx, p.Mint, p.Price); err != nil {
		if err == domain.ErrInvalidPrice {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		}
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, p)
}

func (h *handler) UpdateNft(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Mint  domain.Address `json:"mint"`
		Owner domain.Address `json:"owner"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if !validator.IsValidAddress(p.Mint.String()) || !validator.IsValidAddress(p.Owner.String()) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
	}

	// ownership moved, the row drops back to unlisted with price zero
	if err := h.listing.MarkSold(ctx, p.Mint, p.Owner); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, p)
}
