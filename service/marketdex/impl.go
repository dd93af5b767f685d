package marketdex

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	bCtx "github.com/solmart/goapi/base/ctx"
	"github.com/solmart/goapi/base/delivery"
	"github.com/solmart/goapi/base/log"
	"github.com/solmart/goapi/domain"
	"github.com/solmart/goapi/domain/listing"
)

func NewClient(cfg *ClientCfg) Client {
	return &client{
		endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
		client:   cfg.HttpClient,
		timeout:  cfg.Timeout,
	}
}

type client struct {
	endpoint string
	client   http.Client
	timeout  time.Duration
}

func (c *client) GetNfts(ctx bCtx.Ctx) ([]*listing.Listing, error) {
	rows := []*listing.Listing{}
	if err := c.get(ctx, c.endpoint+"/get-nfts", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *client) GetListedNfts(ctx bCtx.Ctx) ([]*listing.Listing, error) {
	rows := []*listing.Listing{}
	if err := c.get(ctx, c.endpoint+"/get-listed-nfts", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *client) GetNftsByOwner(ctx bCtx.Ctx, owner domain.Address) ([]*listing.Listing, error) {
	rows := []*listing.Listing{}
	if err := c.get(ctx, fmt.Sprintf("%s/get-nfts/%s", c.endpoint, owner), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *client) GetNft(ctx bCtx.Ctx, mint domain.Address) (*listing.Listing, error) {
	row := &listing.Listing{}
	if err := c.get(ctx, fmt.Sprintf("%s/get-nft/%s", c.endpoint, mint), row); err != nil {
		return nil, err
	}
	return row, nil
}

func (c *client) MintNft(ctx bCtx.Ctx, mint, owner domain.Address) error {
	return c.post(ctx, c.endpoint+"/mint-nft", map[string]interface{}{
		"mint":  mint,
		"owner": owner,
	})
}

func (c *client) ListNft(ctx bCtx.Ctx, mint domain.Address, price uint64) error {
	return c.post(ctx, c.endpoint+"/list-nft", map[string]interface{}{
		"mint":  mint,
		"price": price,
	})
}

func (c *client) UpdateNft(ctx bCtx.Ctx, mint, owner domain.Address) error {
	return c.post(ctx, c.endpoint+"/update-nft", map[string]interface{}{
		"mint":  mint,
		"owner": owner,
	})
}

func (c *client) get(ctx bCtx.Ctx, url string, container interface{}) error {
	return c.do(ctx, "GET", url, nil, container)
}

func (c *client) post(ctx bCtx.Ctx, url string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return c.do(ctx, "POST", url, body, nil)
}

func (c *client) do(ctx bCtx.Ctx, method, url string, body []byte, container interface{}) error {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return err
	}
	if method == "POST" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return ErrStatusCodeNotOk
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return err
	}
	if container == nil {
		return nil
	}
	envelope := delivery.JsonResponse{Data: container}
	if err := json.Unmarshal(data, &envelope); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return err
	}
	return nil
}
