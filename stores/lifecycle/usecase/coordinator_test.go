package usecase

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/solmart/goapi/base/ctx"
	"github.com/solmart/goapi/base/metrics"
	"github.com/solmart/goapi/domain"
	"github.com/solmart/goapi/domain/listing"
	listingMocks "github.com/solmart/goapi/domain/listing/mocks"
	"github.com/solmart/goapi/service/program"
	programMocks "github.com/solmart/goapi/service/program/mocks"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	mockProgram *programMocks.Client
	mockListing *listingMocks.Usecase
	subject     *impl

	seller *domain.Wallet
	buyer  *domain.Wallet
	mint   domain.Address
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockProgram = &programMocks.Client{}
	t.mockListing = &listingMocks.Usecase{}
	t.subject = &impl{
		program: t.mockProgram,
		listing: t.mockListing,
		met:     metrics.New("lifecycle"),
	}

	var err error
	t.seller, err = domain.NewRandomWallet()
	t.Require().NoError(err)
	t.buyer, err = domain.NewRandomWallet()
	t.Require().NoError(err)

	mintKey, err := solana.NewRandomPrivateKey()
	t.Require().NoError(err)
	t.mint = domain.Address(mintKey.PublicKey().String())
}

func noopInstruction() solana.Instruction {
	return solana.NewInstruction(solana.SystemProgramID, solana.AccountMetaSlice{}, []byte{})
}

func (t *testsuite) TestMintNft() {
	sig := domain.TxSignature("sig-mint")

	t.mockProgram.
		On("MintNft", mockCtx, mock.Anything, t.seller.PublicKey()).
		Return(noopInstruction(), nil)
	t.mockProgram.
		On("CreateMetadata", mockCtx, mock.Anything, t.seller.PublicKey(), "title", "https://arweave.net/meta.json").
		Return(noopInstruction(), nil)
	t.mockProgram.
		On("Submit", mockCtx, mock.Anything, t.seller.PublicKey(), mock.Anything).
		Return(sig, nil)
	t.mockProgram.
		On("AwaitConfirmation", mockCtx, sig).
		Return(nil)
	t.mockListing.
		On("Register", mockCtx, mock.Anything, t.seller.Address()).
		Return(&listing.Listing{Owner: t.seller.Address()}, nil)

	res, err := t.subject.MintNft(mockCtx, t.seller, "title", "https://arweave.net/meta.json")
	t.NoError(err)
	t.Equal(sig, res.Signature)
	t.False(res.Mint.IsEmpty())
	t.mockListing.AssertNumberOfCalls(t.T(), "Register", 1)
}

func (t *testsuite) TestMintNftConfirmationFails() {
	t.mockProgram.
		On("MintNft", mockCtx, mock.Anything, t.seller.PublicKey()).
		Return(noopInstruction(), nil)
	t.mockProgram.
		On("Submit", mockCtx, mock.Anything, t.seller.PublicKey(), mock.Anything).
		Return(domain.TxSignature("sig"), nil)
	t.mockProgram.
		On("AwaitConfirmation", mockCtx, mock.Anything).
		Return(domain.ErrRPCFailure)

	_, err := t.subject.MintNft(mockCtx, t.seller, "title", "uri")
	t.ErrorIs(err, domain.ErrRPCFailure)
	// no row without a confirmed transaction
	t.mockListing.AssertNotCalled(t.T(), "Register", mock.Anything, mock.Anything, mock.Anything)
}

func (t *testsuite) TestList() {
	sig := domain.TxSignature("sig-list")
	price := uint64(500000000)

	t.mockProgram.
		On("ListNft", mockCtx, mock.Anything, t.seller.PublicKey(), price).
		Return(noopInstruction(), nil)
	t.mockProgram.
		On("Submit", mockCtx, mock.Anything, t.seller.PublicKey(), mock.Anything).
		Return(sig, nil)
	t.mockProgram.
		On("AwaitConfirmation", mockCtx, sig).
		Return(nil)
	t.mockListing.
		On("MarkListed", mockCtx, t.mint, price).
		Return(nil)

	t.NoError(t.subject.List(mockCtx, t.seller, t.mint, price))
	t.mockListing.AssertNumberOfCalls(t.T(), "MarkListed", 1)
}

func (t *testsuite) TestListZeroPrice() {
	err := t.subject.List(mockCtx, t.seller, t.mint, 0)
	t.ErrorIs(err, domain.ErrInvalidPrice)
}

func (t *testsuite) TestListConfirmationFailsLeavesIndexUntouched() {
	t.mockProgram.
		On("ListNft", mockCtx, mock.Anything, t.seller.PublicKey(), mock.Anything).
		Return(noopInstruction(), nil)
	t.mockProgram.
		On("Submit", mockCtx, mock.Anything, t.seller.PublicKey(), mock.Anything).
		Return(domain.TxSignature("sig"), nil)
	t.mockProgram.
		On("AwaitConfirmation", mockCtx, mock.Anything).
		Return(domain.ErrRPCFailure)

	err := t.subject.List(mockCtx, t.seller, t.mint, 500000000)
	t.ErrorIs(err, domain.ErrRPCFailure)
	t.mockListing.AssertNotCalled(t.T(), "MarkListed", mock.Anything, mock.Anything, mock.Anything)
}

func (t *testsuite) TestBuy() {
	sig := domain.TxSignature("sig-buy")

	t.mockListing.
		On("Get", mockCtx, t.mint).
		Return(&listing.Listing{
			Mint:   t.mint,
			Owner:  t.seller.Address(),
			Price:  500000000,
			Listed: true,
		}, nil)
	t.mockProgram.
		On("BuyNft", mockCtx, mock.Anything, t.buyer.PublicKey(), t.seller.PublicKey()).
		Return(noopInstruction(), nil)
	t.mockProgram.
		On("Submit", mockCtx, mock.Anything, t.buyer.PublicKey(), mock.Anything).
		Return(sig, nil)
	t.mockProgram.
		On("AwaitConfirmation", mockCtx, sig).
		Return(nil)
	t.mockListing.
		On("MarkSold", mockCtx, t.mint, t.buyer.Address()).
		Return(nil)

	t.NoError(t.subject.Buy(mockCtx, t.buyer, t.mint))
	t.mockListing.AssertNumberOfCalls(t.T(), "MarkSold", 1)
}

func (t *testsuite) TestBuyLedgerRejectionTriggersRefresh() {
	// the listing was bought by someone else first, the ledger rejects and
	// the row is refreshed to the actual holder
	t.mockListing.
		On("Get", mockCtx, t.mint).
		Return(&listing.Listing{
			Mint:   t.mint,
			Owner:  t.seller.Address(),
			Price:  500000000,
			Listed: true,
		}, nil)
	t.mockProgram.
		On("BuyNft", mockCtx, mock.Anything, t.buyer.PublicKey(), t.seller.PublicKey()).
		Return(noopInstruction(), nil)
	t.mockProgram.
		On("Submit", mockCtx, mock.Anything, t.buyer.PublicKey(), mock.Anything).
		Return(domain.TxSignature("sig"), nil)
	t.mockProgram.
		On("AwaitConfirmation", mockCtx, mock.Anything).
		Return(domain.ErrListingClosed)

	winner, err := domain.NewRandomWallet()
	t.Require().NoError(err)
	t.mockProgram.
		On("GetListingAccount", mockCtx, mock.Anything).
		Return(nil, domain.ErrListingNotFound)
	t.mockProgram.
		On("GetTokenAccountOwner", mockCtx, mock.Anything).
		Return(winner.PublicKey(), nil)
	t.mockListing.
		On("Overwrite", mockCtx, &listing.Listing{
			Mint:   t.mint,
			Owner:  winner.Address(),
			Price:  0,
			Listed: false,
		}).
		Return(nil)

	err = t.subject.Buy(mockCtx, t.buyer, t.mint)
	t.ErrorIs(err, domain.ErrListingClosed)
	t.mockListing.AssertNotCalled(t.T(), "MarkSold", mock.Anything, mock.Anything, mock.Anything)
	t.mockListing.AssertNumberOfCalls(t.T(), "Overwrite", 1)
}

func (t *testsuite) TestInFlightGuard() {
	t.Require().NoError(t.subject.acquire(t.mint, listing.StateListingPending))

	err := t.subject.List(mockCtx, t.seller, t.mint, 500000000)
	t.ErrorIs(err, domain.ErrOperationInFlight)
	t.Equal(listing.StateListingPending, t.subject.StateOf(mockCtx, t.mint))

	t.subject.release(t.mint)
	t.mockProgram.AssertNotCalled(t.T(), "ListNft", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (t *testsuite) TestRefreshListedOnLedger() {
	owner := t.seller.PublicKey()
	mintPub, err := solana.PublicKeyFromBase58(t.mint.String())
	t.Require().NoError(err)

	t.mockProgram.
		On("GetListingAccount", mockCtx, mintPub).
		Return(&program.ListedNftAccount{
			Owner: owner,
			Mint:  mintPub,
			Price: 500000000,
		}, nil)
	t.mockListing.
		On("Overwrite", mockCtx, mock.Anything).
		Return(nil)

	row, err := t.subject.Refresh(mockCtx, t.mint)
	t.NoError(err)
	t.True(row.Listed)
	t.Equal(t.seller.Address(), row.Owner)
	t.EqualValues(500000000, row.Price)
}

func (t *testsuite) TestStateOf() {
	t.mockListing.
		On("Get", mockCtx, t.mint).
		Return(&listing.Listing{Mint: t.mint, Listed: true}, nil).
		Once()
	t.Equal(listing.StateListed, t.subject.StateOf(mockCtx, t.mint))

	t.mockListing.
		On("Get", mockCtx, t.mint).
		Return(nil, domain.ErrNotFound).
		Once()
	t.Equal(listing.StateUnlisted, t.subject.StateOf(mockCtx, t.mint))
}
