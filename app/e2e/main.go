package main

import (
	"errors"
	"net/http"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/viper"

	bCtx "github.com/solmart/goapi/base/ctx"
	"github.com/solmart/goapi/base/log"
	"github.com/solmart/goapi/domain"
	"github.com/solmart/goapi/service/marketdex"
	"github.com/solmart/goapi/service/program"
	lifecycle_usecase "github.com/solmart/goapi/stores/lifecycle/usecase"
	metadata_usecase "github.com/solmart/goapi/stores/metadata/usecase"
	web_resource_repository "github.com/solmart/goapi/stores/web_resource/repository"
)

const listPrice = uint64(500_000_000) // 0.5 sol

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/e2e/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}
}

// Runs the full lifecycle against a live cluster and index api:
// mint -> metadata -> list -> buy, then checks balances, the listing
// account and the index row.
func main() {
	ctx := bCtx.Background()

	seller, err := domain.NewWalletFromKeygenFile(viper.GetString("wallets.seller"))
	assertNoErr(ctx, err, "load seller wallet")
	buyer, err := domain.NewWalletFromKeygenFile(viper.GetString("wallets.buyer"))
	assertNoErr(ctx, err, "load buyer wallet")

	programClient := program.New(&program.ClientCfg{
		RpcUrl: viper.GetString("solana.rpcUrl"),
	})
	dexClient := marketdex.NewClient(&marketdex.ClientCfg{
		Endpoint:   viper.GetString("api.endpoint"),
		HttpClient: http.Client{},
		Timeout:    viper.GetDuration("api.timeout"),
	})
	listingUsecase := marketdex.NewListingUsecase(dexClient)
	coordinator := lifecycle_usecase.New(programClient, listingUsecase)
	metadataUsecase := metadata_usecase.NewMetadataUseCase(&metadata_usecase.MetadataUseCaseCfg{
		HttpReader: web_resource_repository.NewHttpReaderRepo(http.Client{}, viper.GetDuration("api.timeout"), nil),
	})

	title := viper.GetString("nft.title")
	uri := viper.GetString("nft.uri")

	// mint
	ctx.Info("minting")
	res, err := coordinator.MintNft(ctx, seller, title, uri)
	assertNoErr(ctx, err, "mint nft")
	mint := res.Mint
	ctx.WithFields(log.Fields{"mint": mint, "sig": res.Signature}).Info("minted")

	// the uri must resolve, a broken uri degrades to placeholder values
	meta, err := metadataUsecase.GetFromUri(ctx, uri)
	assertNoErr(ctx, err, "resolve metadata")
	ctx.WithField("name", meta.Name).Info("metadata resolved")

	// list
	ctx.Info("listing")
	err = coordinator.List(ctx, seller, mint, listPrice)
	assertNoErr(ctx, err, "list nft")

	mintPub, err := solana.PublicKeyFromBase58(mint.String())
	assertNoErr(ctx, err, "parse mint")

	sellerBalanceBefore, err := programClient.GetBalance(ctx, seller.PublicKey())
	assertNoErr(ctx, err, "seller balance before")

	// buy
	ctx.Info("buying")
	err = coordinator.Buy(ctx, buyer, mint)
	assertNoErr(ctx, err, "buy nft")

	// buyer holds the token now
	buyerAta, err := program.DeriveAssociatedTokenAddress(buyer.PublicKey(), mintPub)
	assertNoErr(ctx, err, "derive buyer ata")
	balance, err := programClient.GetTokenAccountBalance(ctx, buyerAta)
	assertNoErr(ctx, err, "buyer token balance")
	assert(ctx, balance == 1, "buyer token balance == 1")

	// seller got paid
	sellerBalanceAfter, err := programClient.GetBalance(ctx, seller.PublicKey())
	assertNoErr(ctx, err, "seller balance after")
	assert(ctx, sellerBalanceAfter >= sellerBalanceBefore+domain.Lamports(listPrice),
		"seller balance increased by at least the price")

	// listing account closed
	_, err = programClient.GetListingAccount(ctx, mintPub)
	assert(ctx, errors.Is(err, domain.ErrListingNotFound), "listing account gone")

	// index row follows the ledger
	row, err := dexClient.GetNft(ctx, mint)
	assertNoErr(ctx, err, "fetch index row")
	assert(ctx, row.Owner.Equals(buyer.Address()), "index row owner is buyer")
	assert(ctx, !row.Listed, "index row unlisted")

	ctx.Info("lifecycle scenario passed")
}

func assertNoErr(c bCtx.Ctx, err error, step string) {
	if err != nil {
		c.WithFields(log.Fields{"step": step, "err": err}).Panic("scenario step failed")
	}
}

func assert(c bCtx.Ctx, ok bool, check string) {
	if !ok {
		c.WithField("check", check).Panic("scenario check failed")
	}
	c.WithField("check", check).Info("ok")
}
