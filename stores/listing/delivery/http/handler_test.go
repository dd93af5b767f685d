package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/solmart/goapi/base/ctx"
	"github.com/solmart/goapi/domain/listing"
	listingMocks "github.com/solmart/goapi/domain/listing/mocks"
	mmiddleware "github.com/solmart/goapi/middleware"
	"github.com/solmart/goapi/service/redis"
	redisMocks "github.com/solmart/goapi/service/redis/mocks"
)

func newTestServer(listingUsecase listing.Usecase) *echo.Echo {
	mockRedis := &redisMocks.Service{}
	mockRedis.On("Get", mock.Anything, mock.Anything).Return(nil, redis.ErrNotFound)
	mockRedis.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	mmiddleware.SetupCache(mockRedis)

	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", bCtx.Background())
			return next(c)
		}
	})
	New(e, listingUsecase)
	return e
}

func TestGetListedNfts(t *testing.T) {
	req := require.New(t)

	rows := []*listing.Listing{
		{Mint: "mintA", Owner: "ownerA", Price: 500000000, Listed: true},
	}

	mockUsecase := &listingMocks.Usecase{}
	mockUsecase.On("GetListed", mock.Anything).Return(rows, nil)

	e := newTestServer(mockUsecase)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get-listed-nfts", nil))
	req.Equal(http.StatusOK, rec.Code)

	resp := struct {
		Data []*listing.Listing `json:"data"`
	}{}
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	req.Equal(rows, resp.Data)

	// only the listed view is consulted, never the full table
	mockUsecase.AssertNotCalled(t, "GetAll", mock.Anything)
}
