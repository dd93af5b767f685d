package program

import (
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/near/borsh-go"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/solmart/goapi/base/ctx"
	"github.com/solmart/goapi/domain"
)

type instructionSuite struct {
	suite.Suite

	im        *impl
	mint      solana.PublicKey
	authority solana.PublicKey
	buyer     solana.PublicKey
}

func (s *instructionSuite) SetupTest() {
	s.im = &impl{}
	s.mint = solana.NewWallet().PublicKey()
	s.authority = solana.NewWallet().PublicKey()
	s.buyer = solana.NewWallet().PublicKey()
}

func TestInstructionSuite(t *testing.T) {
	suite.Run(t, new(instructionSuite))
}

func (s *instructionSuite) TestMintNft() {
	ix, err := s.im.MintNft(ctx.Background(), s.mint, s.authority)
	s.Require().NoError(err)

	s.Equal(MarketplaceProgramID, ix.ProgramID())

	accounts := ix.Accounts()
	s.Require().Len(accounts, 7)
	s.Equal(s.mint, accounts[0].PublicKey)
	s.True(accounts[0].IsSigner)
	s.True(accounts[0].IsWritable)
	s.Equal(s.authority, accounts[1].PublicKey)
	s.True(accounts[1].IsSigner)

	ata, err := DeriveAssociatedTokenAddress(s.authority, s.mint)
	s.Require().NoError(err)
	s.Equal(ata, accounts[2].PublicKey)
	s.False(accounts[2].IsSigner)
	s.True(accounts[2].IsWritable)

	data, err := ix.Data()
	s.Require().NoError(err)
	s.Equal(mintDiscriminator[:], data)
}

func (s *instructionSuite) TestCreateMetadata() {
	ix, err := s.im.CreateMetadata(ctx.Background(), s.mint, s.authority, "Degen Ape #1", "https://arweave.net/abc")
	s.Require().NoError(err)

	data, err := ix.Data()
	s.Require().NoError(err)
	s.Equal(createMetadataDiscriminator[:], data[:8])

	var args createMetadataArgs
	s.Require().NoError(borsh.Deserialize(&args, data[8:]))
	s.Equal("Degen Ape #1", args.Title)
	s.Equal("https://arweave.net/abc", args.Uri)

	metadata, err := DeriveMetadataAddress(s.mint)
	s.Require().NoError(err)
	s.Equal(metadata, ix.Accounts()[2].PublicKey)
}

func (s *instructionSuite) TestListNft() {
	ix, err := s.im.ListNft(ctx.Background(), s.mint, s.authority, 500000000)
	s.Require().NoError(err)

	data, err := ix.Data()
	s.Require().NoError(err)
	s.Equal(listNftDiscriminator[:], data[:8])
	s.Equal(uint64(500000000), binary.LittleEndian.Uint64(data[8:16]))

	accounts := ix.Accounts()
	s.Require().Len(accounts, 10)
	s.Equal(s.authority, accounts[0].PublicKey)
	s.True(accounts[0].IsSigner)

	listing, err := DeriveListingAddress(s.mint)
	s.Require().NoError(err)
	s.Equal(listing, accounts[3].PublicKey)
	s.False(accounts[3].IsSigner)
	s.True(accounts[3].IsWritable)
}

func (s *instructionSuite) TestListNftZeroPrice() {
	_, err := s.im.ListNft(ctx.Background(), s.mint, s.authority, 0)
	s.Equal(domain.ErrInvalidPrice, err)
}

func (s *instructionSuite) TestBuyNft() {
	ix, err := s.im.BuyNft(ctx.Background(), s.mint, s.buyer, s.authority)
	s.Require().NoError(err)

	data, err := ix.Data()
	s.Require().NoError(err)
	s.Equal(buyNftDiscriminator[:], data)

	accounts := ix.Accounts()
	s.Require().Len(accounts, 11)
	s.Equal(s.buyer, accounts[0].PublicKey)
	s.True(accounts[0].IsSigner)
	s.Equal(s.authority, accounts[1].PublicKey)
	s.False(accounts[1].IsSigner)
	s.True(accounts[1].IsWritable)

	buyerAta, err := DeriveAssociatedTokenAddress(s.buyer, s.mint)
	s.Require().NoError(err)
	s.Equal(buyerAta, accounts[5].PublicKey)
}

func TestAnchorInstructionDiscriminator(t *testing.T) {
	// stable across calls and distinct per instruction
	require.Equal(t, anchorInstructionDiscriminator("list_nft"), listNftDiscriminator)
	require.NotEqual(t, listNftDiscriminator, buyNftDiscriminator)
	require.NotEqual(t, mintDiscriminator, createMetadataDiscriminator)
}

func TestMapLedgerStatusError(t *testing.T) {
	cases := []struct {
		Desc   string
		Status interface{}
		Err    error
	}{
		{
			Desc:   "insufficient funds custom error",
			Status: map[string]interface{}{"InstructionError": []interface{}{0, map[string]interface{}{"Custom": "InsufficientFunds"}}},
			Err:    domain.ErrInsufficientFunds,
		},
		{
			Desc:   "insufficient funds custom code",
			Status: map[string]interface{}{"InstructionError": []interface{}{0, map[string]interface{}{"Custom": 6000}}},
			Err:    domain.ErrInsufficientFunds,
		},
		{
			Desc:   "insufficient funds hex custom code",
			Status: "Error processing Instruction 0: custom program error: 0x1770",
			Err:    domain.ErrInsufficientFunds,
		},
		{
			Desc:   "listing account already closed",
			Status: "Error processing Instruction 0: AccountNotInitialized",
			Err:    domain.ErrListingClosed,
		},
		{
			Desc:   "seller constraint violated",
			Status: "Error processing Instruction 0: ConstraintHasOne",
			Err:    domain.ErrUnauthorizedSeller,
		},
	}

	for _, c := range cases {
		require.Equal(t, c.Err, mapLedgerStatusError(c.Status), c.Desc)
	}
}
