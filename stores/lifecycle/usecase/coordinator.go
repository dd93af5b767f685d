package usecase

import (
	"errors"
	"sync"

	"github.com/gagliardetto/solana-go"

	"github.com/solmart/goapi/base/ctx"
	"github.com/solmart/goapi/base/log"
	"github.com/solmart/goapi/base/metrics"
	"github.com/solmart/goapi/domain"
	"github.com/solmart/goapi/domain/listing"
	"github.com/solmart/goapi/service/program"
)

type impl struct {
	program program.Client
	listing listing.Usecase
	met     metrics.Service

	// per-mint in-flight guard, local to this client. cross-client races
	// are arbitrated by the ledger, not by us.
	inFlight sync.Map
}

// New creates the lifecycle coordinator
func New(programClient program.Client, listingUsecase listing.Usecase) listing.Coordinator {
	return &impl{
		program: programClient,
		listing: listingUsecase,
		met:     metrics.New("lifecycle"),
	}
}

func (im *impl) acquire(mint domain.Address, state listing.State) error {
	if _, loaded := im.inFlight.LoadOrStore(mint, state); loaded {
		return domain.ErrOperationInFlight
	}
	return nil
}

func (im *impl) release(mint domain.Address) {
	im.inFlight.Delete(mint)
}

func (im *impl) MintNft(c ctx.Ctx, wallet *domain.Wallet, title, uri string) (*listing.MintResult, error) {
	defer im.met.BumpTime("mint.time").End()

	mintWallet, err := domain.NewRandomWallet()
	if err != nil {
		c.WithField("err", err).Error("NewRandomWallet failed")
		return nil, err
	}
	mint := mintWallet.Address()

	if err := im.acquire(mint, listing.StateUnlisted); err != nil {
		return nil, err
	}
	defer im.release(mint)

	mintIx, err := im.program.MintNft(c, mintWallet.PublicKey(), wallet.PublicKey())
	if err != nil {
		return nil, err
	}

	signers := []solana.PrivateKey{mintWallet.PrivateKey, wallet.PrivateKey}

	sig, err := im.program.Submit(c, []solana.Instruction{mintIx}, wallet.PublicKey(), signers)
	if err != nil {
		im.met.BumpSum("mint.err", 1)
		return nil, err
	}
	if err := im.program.AwaitConfirmation(c, sig); err != nil {
		im.met.BumpSum("mint.err", 1)
		return nil, err
	}

	metaIx, err := im.program.CreateMetadata(c, mintWallet.PublicKey(), wallet.PublicKey(), title, uri)
	if err != nil {
		return nil, err
	}
	metaSig, err := im.program.Submit(c, []solana.Instruction{metaIx}, wallet.PublicKey(), signers)
	if err != nil {
		im.met.BumpSum("mint.err", 1)
		return nil, err
	}
	if err := im.program.AwaitConfirmation(c, metaSig); err != nil {
		im.met.BumpSum("mint.err", 1)
		return nil, err
	}

	// the row is created only now, after both transactions confirmed
	if _, err := im.listing.Register(c, mint, wallet.Address()); err != nil {
		c.WithFields(log.Fields{
			"mint": mint,
			"err":  err,
		}).Error("listing.Register failed")
		return nil, err
	}

	return &listing.MintResult{Mint: mint, Signature: sig}, nil
}

func (im *impl) List(c ctx.Ctx, wallet *domain.Wallet, mint domain.Address, price uint64) error {
	defer im.met.BumpTime("list.time").End()

	if price == 0 {
		return domain.ErrInvalidPrice
	}

	mintPub, err := solana.PublicKeyFromBase58(mint.String())
	if err != nil {
		return domain.ErrInvalidAddress
	}

	if err := im.acquire(mint, listing.StateListingPending); err != nil {
		return err
	}
	defer im.release(mint)

	ix, err := im.program.ListNft(c, mintPub, wallet.PublicKey(), price)
	if err != nil {
		return err
	}
	sig, err := im.program.Submit(c, []solana.Instruction{ix}, wallet.PublicKey(), []solana.PrivateKey{wallet.PrivateKey})
	if err != nil {
		im.met.BumpSum("list.err", 1)
		im.refreshOnLedgerRejection(c, mint, err)
		return err
	}
	if err := im.program.AwaitConfirmation(c, sig); err != nil {
		im.met.BumpSum("list.err", 1)
		im.refreshOnLedgerRejection(c, mint, err)
		return err
	}

	// index write happens strictly after confirmation
	if err := im.listing.MarkListed(c, mint, price); err != nil {
		c.WithFields(log.Fields{
			"mint": mint,
			"err":  err,
		}).Error("listing.MarkListed failed")
		return err
	}
	return nil
}

func (im *impl) Buy(c ctx.Ctx, wallet *domain.Wallet, mint domain.Address) error {
	defer im.met.BumpTime("buy.time").End()

	mintPub, err := solana.PublicKeyFromBase58(mint.String())
	if err != nil {
		return domain.ErrInvalidAddress
	}

	if err := im.acquire(mint, listing.StateBuyingPending); err != nil {
		return err
	}
	defer im.release(mint)

	// the row only supplies the seller account for the instruction, the
	// ledger decides whether the listing is still open
	row, err := im.listing.Get(c, mint)
	if err != nil {
		return err
	}
	sellerPub, err := solana.PublicKeyFromBase58(row.Owner.String())
	if err != nil {
		return domain.ErrInvalidAddress
	}

	ix, err := im.program.BuyNft(c, mintPub, wallet.PublicKey(), sellerPub)
	if err != nil {
		return err
	}
	sig, err := im.program.Submit(c, []solana.Instruction{ix}, wallet.PublicKey(), []solana.PrivateKey{wallet.PrivateKey})
	if err != nil {
		im.met.BumpSum("buy.err", 1)
		im.refreshOnLedgerRejection(c, mint, err)
		return err
	}
	if err := im.program.AwaitConfirmation(c, sig); err != nil {
		im.met.BumpSum("buy.err", 1)
		im.refreshOnLedgerRejection(c, mint, err)
		return err
	}

	if err := im.listing.MarkSold(c, mint, wallet.Address()); err != nil {
		c.WithFields(log.Fields{
			"mint": mint,
			"err":  err,
		}).Error("listing.MarkSold failed")
		return err
	}
	return nil
}

func (im *impl) Refresh(c ctx.Ctx, mint domain.Address) (*listing.Listing, error) {
	mintPub, err := solana.PublicKeyFromBase58(mint.String())
	if err != nil {
		return nil, domain.ErrInvalidAddress
	}

	account, err := im.program.GetListingAccount(c, mintPub)
	if err == nil {
		row := &listing.Listing{
			Mint:   mint,
			Owner:  domain.Address(account.Owner.String()),
			Price:  account.Price,
			Listed: true,
		}
		if err := im.listing.Overwrite(c, row); err != nil {
			return nil, err
		}
		return row, nil
	}
	if !errors.Is(err, domain.ErrListingNotFound) {
		return nil, err
	}

	// no listing account, whoever holds the token owns the nft
	holder, err := im.program.GetTokenAccountOwner(c, mintPub)
	if err != nil {
		return nil, err
	}
	row := &listing.Listing{
		Mint:   mint,
		Owner:  domain.Address(holder.String()),
		Price:  0,
		Listed: false,
	}
	if err := im.listing.Overwrite(c, row); err != nil {
		return nil, err
	}
	return row, nil
}

func (im *impl) StateOf(c ctx.Ctx, mint domain.Address) listing.State {
	if v, ok := im.inFlight.Load(mint); ok {
		return v.(listing.State)
	}
	row, err := im.listing.Get(c, mint)
	if err != nil || !row.Listed {
		return listing.StateUnlisted
	}
	return listing.StateListed
}

// refreshOnLedgerRejection reconciles the row when the ledger told us the
// listing is gone, the rejection itself still surfaces to the caller
func (im *impl) refreshOnLedgerRejection(c ctx.Ctx, mint domain.Address, cause error) {
	if !errors.Is(cause, domain.ErrListingClosed) && !errors.Is(cause, domain.ErrListingNotFound) {
		return
	}
	if _, err := im.Refresh(c, mint); err != nil {
		c.WithFields(log.Fields{
			"mint":  mint,
			"cause": cause,
			"err":   err,
		}).Warn("refresh after ledger rejection failed")
	}
}
