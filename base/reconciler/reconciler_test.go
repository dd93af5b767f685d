package reconciler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/solmart/goapi/base/ctx"
	"github.com/solmart/goapi/domain"
	"github.com/solmart/goapi/domain/listing"
	"github.com/solmart/goapi/domain/listing/mocks"
	notifierMocks "github.com/solmart/goapi/service/notifier/mocks"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	mockListing     *mocks.Usecase
	mockCoordinator *mocks.Coordinator
	mockNotifier    *notifierMocks.Notifier
	subject         *Reconciler
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockListing = &mocks.Usecase{}
	t.mockCoordinator = &mocks.Coordinator{}
	t.mockNotifier = &notifierMocks.Notifier{}
	t.subject = New(&Cfg{
		Listing:     t.mockListing,
		Coordinator: t.mockCoordinator,
		Interval:    time.Second,
		BatchSize:   2,
		Notifier:    t.mockNotifier,
	})
}

func (t *testsuite) TestSweepOnceRepairsDivergedRow() {
	rows := []*listing.Listing{
		{Mint: "mintA", Owner: "ownerA", Price: 500000000, Listed: true},
		{Mint: "mintB", Owner: "ownerB", Price: 0, Listed: false},
	}

	t.mockListing.
		On("GetAll", mockCtx).
		Return(rows, nil)
	// mintA was bought behind our back, the ledger says new owner and no listing
	t.mockCoordinator.
		On("Refresh", mockCtx, domain.Address("mintA")).
		Return(&listing.Listing{Mint: "mintA", Owner: "ownerC", Price: 0, Listed: false}, nil)
	// mintB matches the ledger
	t.mockCoordinator.
		On("Refresh", mockCtx, domain.Address("mintB")).
		Return(rows[1], nil)
	t.mockNotifier.
		On("NotifySold", mockCtx, rows[0], "ownerC").
		Return(nil)

	fixed, err := t.subject.SweepOnce(mockCtx)
	t.NoError(err)
	t.Equal(1, fixed)
}

func (t *testsuite) TestSweepOncePostsSaleNotification() {
	row := &listing.Listing{Mint: "mintA", Owner: "ownerA", Price: 500000000, Listed: true}

	t.mockListing.
		On("GetAll", mockCtx).
		Return([]*listing.Listing{row}, nil)
	// the listing closed on the ledger and ownership moved, a sale we missed
	t.mockCoordinator.
		On("Refresh", mockCtx, domain.Address("mintA")).
		Return(&listing.Listing{Mint: "mintA", Owner: "ownerB", Price: 0, Listed: false}, nil)
	t.mockNotifier.
		On("NotifySold", mockCtx, row, "ownerB").
		Return(nil)

	fixed, err := t.subject.SweepOnce(mockCtx)
	t.NoError(err)
	t.Equal(1, fixed)
	t.mockNotifier.AssertCalled(t.T(), "NotifySold", mockCtx, row, "ownerB")
	t.mockNotifier.AssertNotCalled(t.T(), "NotifyRepaired", mockCtx, mock.Anything, mock.Anything)
}

func (t *testsuite) TestSweepOncePostsRepairNotification() {
	row := &listing.Listing{Mint: "mintA", Owner: "ownerA", Price: 500000000, Listed: true}
	fresh := &listing.Listing{Mint: "mintA", Owner: "ownerA", Price: 700000000, Listed: true}

	t.mockListing.
		On("GetAll", mockCtx).
		Return([]*listing.Listing{row}, nil)
	// same owner, the price drifted, plain repair rather than a sale
	t.mockCoordinator.
		On("Refresh", mockCtx, domain.Address("mintA")).
		Return(fresh, nil)
	t.mockNotifier.
		On("NotifyRepaired", mockCtx, row, fresh).
		Return(nil)

	fixed, err := t.subject.SweepOnce(mockCtx)
	t.NoError(err)
	t.Equal(1, fixed)
	t.mockNotifier.AssertNotCalled(t.T(), "NotifySold", mockCtx, mock.Anything, mock.Anything)
}

func (t *testsuite) TestSweepOnceEmptyIndex() {
	t.mockListing.
		On("GetAll", mockCtx).
		Return([]*listing.Listing{}, nil)

	fixed, err := t.subject.SweepOnce(mockCtx)
	t.NoError(err)
	t.Zero(fixed)
}

func (t *testsuite) TestSweepOnceSurfacesRefreshError() {
	rows := []*listing.Listing{
		{Mint: "mintA", Owner: "ownerA", Price: 0, Listed: false},
	}

	t.mockListing.
		On("GetAll", mockCtx).
		Return(rows, nil)
	t.mockCoordinator.
		On("Refresh", mockCtx, domain.Address("mintA")).
		Return(nil, domain.ErrRPCFailure)

	_, err := t.subject.SweepOnce(mockCtx)
	t.ErrorIs(err, domain.ErrRPCFailure)
}
