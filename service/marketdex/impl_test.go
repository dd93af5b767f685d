package marketdex

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	bCtx "github.com/solmart/goapi/base/ctx"
	"github.com/solmart/goapi/base/delivery"
	"github.com/solmart/goapi/domain"
	"github.com/solmart/goapi/domain/listing"
)

func Test_Marketdex(t *testing.T) {
	req := require.New(t)

	rows := []*listing.Listing{
		{Mint: "mintA", Owner: "ownerA", Price: 500000000, Listed: true},
		{Mint: "mintB", Owner: "ownerA", Price: 0, Listed: false},
	}

	var gotListPayload map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == "GET" && r.URL.Path == "/get-nfts":
			json.NewEncoder(w).Encode(delivery.JsonResponse{Data: rows, Status: delivery.JsonResponseStatusSuccess})
		case r.Method == "GET" && r.URL.Path == "/get-listed-nfts":
			json.NewEncoder(w).Encode(delivery.JsonResponse{Data: rows[:1], Status: delivery.JsonResponseStatusSuccess})
		case r.Method == "GET" && r.URL.Path == "/get-nft/mintA":
			json.NewEncoder(w).Encode(delivery.JsonResponse{Data: rows[0], Status: delivery.JsonResponseStatusSuccess})
		case r.Method == "GET" && r.URL.Path == "/get-nft/missing":
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(delivery.JsonResponse{Data: "not found", Status: delivery.JsonResponseStatusFail})
		case r.Method == "POST" && r.URL.Path == "/list-nft":
			json.NewDecoder(r.Body).Decode(&gotListPayload)
			json.NewEncoder(w).Encode(delivery.JsonResponse{Data: gotListPayload, Status: delivery.JsonResponseStatusSuccess})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	ctx := bCtx.Background()
	c := NewClient(&ClientCfg{
		Endpoint:   srv.URL,
		HttpClient: http.Client{},
		Timeout:    10 * time.Second,
	})

	got, err := c.GetNfts(ctx)
	req.NoError(err)
	req.Equal(rows, got)

	listed, err := c.GetListedNfts(ctx)
	req.NoError(err)
	req.Equal(rows[:1], listed)

	row, err := c.GetNft(ctx, "mintA")
	req.NoError(err)
	req.Equal(rows[0], row)

	_, err = c.GetNft(ctx, "missing")
	req.ErrorIs(err, domain.ErrNotFound)

	req.NoError(c.ListNft(ctx, "mintA", 500000000))
	req.EqualValues("mintA", gotListPayload["mint"])
	req.EqualValues(500000000, gotListPayload["price"])
}
