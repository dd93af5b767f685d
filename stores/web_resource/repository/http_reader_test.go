package repository

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	bCtx "github.com/solmart/goapi/base/ctx"
)

func Test_httpReaderRepo_Get(t *testing.T) {
	req := require.New(t)

	body := `{"name":"Degen Ape #42","symbol":"DAPE","image":"https://arweave.net/8aN1Qy1s/42.png"}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.json" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("User-Agent") == "" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.Write([]byte(body))
	}))
	defer srv.Close()

	ctx := bCtx.Background()
	r := NewHttpReaderRepo(http.Client{}, 10*time.Second, map[string]string{"User-Agent": "solmart"})

	b, err := r.Get(ctx, srv.URL+"/metadata.json")
	req.NoError(err)
	req.Equal([]byte(body), b)

	_, err = r.Get(ctx, srv.URL+"/missing.json")
	req.Error(err)
}
