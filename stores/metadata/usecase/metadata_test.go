package usecase

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/mock"
	bCtx "github.com/solmart/goapi/base/ctx"
	"github.com/solmart/goapi/domain"
	"github.com/solmart/goapi/domain/mocks"
)

func Test_metadataUseCase_GetFromUri(t *testing.T) {
	tests := []struct {
		name      string
		uri       string
		readerRes []byte
		readerErr error
		want      *domain.Metadata
		wantErr   bool
	}{
		{
			name:    "unsupported scheme",
			uri:     "ipfs://QmeSjSinHpPnmXmspMjwiXyN6zS4E9zccariGR3jxcaWtq/0",
			wantErr: true,
		},
		{
			name:      "https json document",
			uri:       "https://arweave.net/8aN1Qy1s/metadata.json",
			readerRes: []byte(`{"name":"Degen Ape #42","symbol":"DAPE","description":"one of many","image":"https://arweave.net/8aN1Qy1s/42.png"}`),
			want: &domain.Metadata{
				Name:        "Degen Ape #42",
				Symbol:      "DAPE",
				Description: "one of many",
				Image:       "https://arweave.net/8aN1Qy1s/42.png",
			},
		},
		{
			name:      "unreachable uri degrades to placeholder",
			uri:       "https://gone.example.com/metadata.json",
			readerErr: errors.New("connection refused"),
			want:      &domain.PlaceholderMetadata,
		},
		{
			name:      "invalid json degrades to placeholder",
			uri:       "https://arweave.net/broken/metadata.json",
			readerRes: []byte(`<html>not json</html>`),
			want:      &domain.PlaceholderMetadata,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := &mocks.WebResourceReaderRepository{}
			if tt.readerRes != nil || tt.readerErr != nil {
				reader.
					On("Get", mock.Anything, tt.uri).
					Return(tt.readerRes, tt.readerErr)
			}
			u := NewMetadataUseCase(&MetadataUseCaseCfg{
				HttpReader: reader,
			})
			ctx := bCtx.Background()
			got, err := u.GetFromUri(ctx, tt.uri)
			if (err != nil) != tt.wantErr {
				t.Errorf("metadataUseCase.GetFromUri() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("metadataUseCase.GetFromUri() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_metadataUseCase_GetFromUri_cached(t *testing.T) {
	reader := &mocks.WebResourceReaderRepository{}
	uri := "https://arweave.net/cached/metadata.json"
	reader.
		On("Get", mock.Anything, uri).
		Return([]byte(`{"name":"Cached"}`), nil).
		Once()
	u := NewMetadataUseCase(&MetadataUseCaseCfg{
		HttpReader: reader,
	})
	ctx := bCtx.Background()
	for i := 0; i < 3; i++ {
		got, err := u.GetFromUri(ctx, uri)
		if err != nil {
			t.Fatalf("metadataUseCase.GetFromUri() error = %v", err)
		}
		if got.Name != "Cached" {
			t.Fatalf("metadataUseCase.GetFromUri() name = %v", got.Name)
		}
	}
	reader.AssertExpectations(t)
}
