package domain

import (
	"github.com/solmart/goapi/base/ctx"
)

// Metadata is the off-chain json document an nft's uri points to
type Metadata struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// PlaceholderMetadata is rendered when the uri is unreachable or malformed
var PlaceholderMetadata = Metadata{
	Name:        "Unknown",
	Symbol:      "",
	Description: "Metadata unavailable",
	Image:       "",
}

type MetadataUseCase interface {
	// GetFromUri fetches and parses metadata, degrading to
	// PlaceholderMetadata on unreachable or invalid documents
	GetFromUri(ctx.Ctx, string) (*Metadata, error)
}

type WebResourceReaderRepository interface {
	Get(ctx.Ctx, string) ([]byte, error)
}
