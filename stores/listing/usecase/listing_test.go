package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/solmart/goapi/base/ctx"
	"github.com/solmart/goapi/base/ptr"
	"github.com/solmart/goapi/domain"
	"github.com/solmart/goapi/domain/listing"
	"github.com/solmart/goapi/domain/listing/mocks"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	mockRepo *mocks.Repo
	subject  *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockRepo = &mocks.Repo{}
	t.subject = &impl{
		repo: t.mockRepo,
	}
}

func (t *testsuite) TestRegister() {
	var (
		mint  = domain.Address("4Nd1mYvM6K3yvHw8Pien47me1ZJzWJnVRNZRwEPzTxYC")
		owner = domain.Address("7S3P4HxJpyyigGzodYwHtCxZyUQe9JiBMHyRWXArAaKv")
	)

	t.mockRepo.
		On("Create", mockCtx, &listing.Listing{
			Mint:   mint,
			Owner:  owner,
			Price:  0,
			Listed: false,
		}).
		Return(nil)

	row, err := t.subject.Register(mockCtx, mint, owner)
	t.NoError(err)
	t.Equal(mint, row.Mint)
	t.False(row.Listed)
	t.EqualValues(0, row.Price)
}

func (t *testsuite) TestRegisterDuplicated() {
	var (
		mint  = domain.Address("4Nd1mYvM6K3yvHw8Pien47me1ZJzWJnVRNZRwEPzTxYC")
		owner = domain.Address("7S3P4HxJpyyigGzodYwHtCxZyUQe9JiBMHyRWXArAaKv")
	)

	t.mockRepo.
		On("Create", mockCtx, mock.Anything).
		Return(domain.ErrConflict)

	_, err := t.subject.Register(mockCtx, mint, owner)
	t.ErrorIs(err, domain.ErrConflict)
}

func (t *testsuite) TestMarkListed() {
	var (
		mint  = domain.Address("4Nd1mYvM6K3yvHw8Pien47me1ZJzWJnVRNZRwEPzTxYC")
		price = uint64(500000000)
	)

	t.mockRepo.
		On("Patch", mockCtx, mint, listing.Patchable{
			Price:  ptr.Uint64(price),
			Listed: ptr.Bool(true),
		}).
		Return(nil)

	t.NoError(t.subject.MarkListed(mockCtx, mint, price))
}

func (t *testsuite) TestMarkListedZeroPrice() {
	mint := domain.Address("4Nd1mYvM6K3yvHw8Pien47me1ZJzWJnVRNZRwEPzTxYC")

	err := t.subject.MarkListed(mockCtx, mint, 0)
	t.ErrorIs(err, domain.ErrInvalidPrice)
	t.mockRepo.AssertNotCalled(t.T(), "Patch", mock.Anything, mock.Anything, mock.Anything)
}

func (t *testsuite) TestMarkSold() {
	var (
		mint     = domain.Address("4Nd1mYvM6K3yvHw8Pien47me1ZJzWJnVRNZRwEPzTxYC")
		newOwner = domain.Address("9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin")
	)

	t.mockRepo.
		On("Patch", mockCtx, mint, listing.Patchable{
			Owner:  newOwner.Ptr(),
			Price:  ptr.Uint64(0),
			Listed: ptr.Bool(false),
		}).
		Return(nil)

	t.NoError(t.subject.MarkSold(mockCtx, mint, newOwner))
}

func (t *testsuite) TestGetListed() {
	rows := []*listing.Listing{
		{Mint: "mintA", Owner: "ownerA", Price: 500000000, Listed: true},
	}

	t.mockRepo.
		On("FindAll", mockCtx, mock.AnythingOfType("listing.FindAllOptions")).
		Return(rows, nil)

	got, err := t.subject.GetListed(mockCtx)
	t.NoError(err)
	t.Len(got, 1)
	t.True(got[0].Listed)
}

func (t *testsuite) TestGetByOwner() {
	owner := domain.Address("7S3P4HxJpyyigGzodYwHtCxZyUQe9JiBMHyRWXArAaKv")
	rows := []*listing.Listing{
		{Mint: "mintA", Owner: owner, Price: 100, Listed: true},
		{Mint: "mintB", Owner: owner, Price: 0, Listed: false},
	}

	t.mockRepo.
		On("FindAll", mockCtx, mock.AnythingOfType("listing.FindAllOptions")).
		Return(rows, nil)

	got, err := t.subject.GetByOwner(mockCtx, owner)
	t.NoError(err)
	t.Len(got, 2)
}
