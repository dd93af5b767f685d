package program

import (
	"crypto/sha256"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/near/borsh-go"
	"golang.org/x/xerrors"

	"github.com/solmart/goapi/base/ctx"
	"github.com/solmart/goapi/base/log"
	"github.com/solmart/goapi/base/metrics"
	"github.com/solmart/goapi/domain"
)

const (
	confirmationPollInterval = 700 * time.Millisecond

	// anchor account data starts after the 8-byte discriminator
	accountDiscriminatorLen = 8
)

var (
	mintDiscriminator           = anchorInstructionDiscriminator("mint")
	createMetadataDiscriminator = anchorInstructionDiscriminator("create_metadata")
	listNftDiscriminator        = anchorInstructionDiscriminator("list_nft")
	buyNftDiscriminator         = anchorInstructionDiscriminator("buy_nft")
)

func anchorInstructionDiscriminator(ixName string) [8]byte {
	hash := sha256.Sum256([]byte("global:" + ixName))
	var out [8]byte
	copy(out[:], hash[:8])
	return out
}

type createMetadataArgs struct {
	Title string
	Uri   string
}

type listNftArgs struct {
	Price uint64
}

// ClientCfg is the config of program client
type ClientCfg struct {
	RpcUrl     string
	Commitment rpc.CommitmentType
}

type impl struct {
	rpc        *rpc.Client
	commitment rpc.CommitmentType
	met        metrics.Service
}

func New(cfg *ClientCfg) Client {
	commitment := cfg.Commitment
	if commitment == "" {
		commitment = rpc.CommitmentConfirmed
	}
	return &impl{
		rpc:        rpc.New(cfg.RpcUrl),
		commitment: commitment,
		met:        metrics.New("program"),
	}
}

func (im *impl) MintNft(c ctx.Ctx, mint, authority solana.PublicKey) (solana.Instruction, error) {
	tokenAccount, err := DeriveAssociatedTokenAddress(authority, mint)
	if err != nil {
		c.WithField("err", err).Error("DeriveAssociatedTokenAddress failed")
		return nil, err
	}

	data := make([]byte, accountDiscriminatorLen)
	copy(data, mintDiscriminator[:])

	accounts := solana.AccountMetaSlice{
		solana.NewAccountMeta(mint, true, true),
		solana.NewAccountMeta(authority, true, true),
		solana.NewAccountMeta(tokenAccount, true, false),
		solana.NewAccountMeta(solana.SysVarRentPubkey, false, false),
		solana.NewAccountMeta(solana.SystemProgramID, false, false),
		solana.NewAccountMeta(solana.TokenProgramID, false, false),
		solana.NewAccountMeta(solana.SPLAssociatedTokenAccountProgramID, false, false),
	}

	return solana.NewInstruction(MarketplaceProgramID, accounts, data), nil
}

func (im *impl) CreateMetadata(c ctx.Ctx, mint, authority solana.PublicKey, title, uri string) (solana.Instruction, error) {
	metadata, err := DeriveMetadataAddress(mint)
	if err != nil {
		c.WithField("err", err).Error("DeriveMetadataAddress failed")
		return nil, err
	}
	masterEdition, err := DeriveMasterEditionAddress(mint)
	if err != nil {
		c.WithField("err", err).Error("DeriveMasterEditionAddress failed")
		return nil, err
	}

	args, err := borsh.Serialize(createMetadataArgs{Title: title, Uri: uri})
	if err != nil {
		c.WithField("err", err).Error("borsh.Serialize failed")
		return nil, err
	}
	data := append(createMetadataDiscriminator[:], args...)

	accounts := solana.AccountMetaSlice{
		solana.NewAccountMeta(mint, true, true),
		solana.NewAccountMeta(authority, true, true),
		solana.NewAccountMeta(metadata, true, false),
		solana.NewAccountMeta(masterEdition, true, false),
		solana.NewAccountMeta(TokenMetadataProgramID, false, false),
		solana.NewAccountMeta(solana.SystemProgramID, false, false),
		solana.NewAccountMeta(solana.TokenProgramID, false, false),
		solana.NewAccountMeta(solana.SysVarRentPubkey, false, false),
	}

	return solana.NewInstruction(MarketplaceProgramID, accounts, data), nil
}

func (im *impl) ListNft(c ctx.Ctx, mint, owner solana.PublicKey, price uint64) (solana.Instruction, error) {
	if price == 0 {
		return nil, domain.ErrInvalidPrice
	}

	ownerTokenAccount, err := DeriveAssociatedTokenAddress(owner, mint)
	if err != nil {
		c.WithField("err", err).Error("DeriveAssociatedTokenAddress failed")
		return nil, err
	}
	listingAccount, err := DeriveListingAddress(mint)
	if err != nil {
		c.WithField("err", err).Error("DeriveListingAddress failed")
		return nil, err
	}
	programPda, err := DeriveMarketplaceAddress()
	if err != nil {
		c.WithField("err", err).Error("DeriveMarketplaceAddress failed")
		return nil, err
	}
	pdaTokenAccount, err := DeriveAssociatedTokenAddress(programPda, mint)
	if err != nil {
		c.WithField("err", err).Error("DeriveAssociatedTokenAddress failed")
		return nil, err
	}

	args, err := borsh.Serialize(listNftArgs{Price: price})
	if err != nil {
		c.WithField("err", err).Error("borsh.Serialize failed")
		return nil, err
	}
	data := append(listNftDiscriminator[:], args...)

	accounts := solana.AccountMetaSlice{
		solana.NewAccountMeta(owner, true, true),
		solana.NewAccountMeta(mint, true, false),
		solana.NewAccountMeta(ownerTokenAccount, true, false),
		solana.NewAccountMeta(listingAccount, true, false),
		solana.NewAccountMeta(pdaTokenAccount, true, false),
		solana.NewAccountMeta(programPda, false, false),
		solana.NewAccountMeta(solana.TokenProgramID, false, false),
		solana.NewAccountMeta(solana.SPLAssociatedTokenAccountProgramID, false, false),
		solana.NewAccountMeta(solana.SysVarRentPubkey, false, false),
		solana.NewAccountMeta(solana.SystemProgramID, false, false),
	}

	return solana.NewInstruction(MarketplaceProgramID, accounts, data), nil
}

func (im *impl) BuyNft(c ctx.Ctx, mint, buyer, seller solana.PublicKey) (solana.Instruction, error) {
	listingAccount, err := DeriveListingAddress(mint)
	if err != nil {
		c.WithField("err", err).Error("DeriveListingAddress failed")
		return nil, err
	}
	programPda, err := DeriveMarketplaceAddress()
	if err != nil {
		c.WithField("err", err).Error("DeriveMarketplaceAddress failed")
		return nil, err
	}
	pdaTokenAccount, err := DeriveAssociatedTokenAddress(programPda, mint)
	if err != nil {
		c.WithField("err", err).Error("DeriveAssociatedTokenAddress failed")
		return nil, err
	}
	buyerTokenAccount, err := DeriveAssociatedTokenAddress(buyer, mint)
	if err != nil {
		c.WithField("err", err).Error("DeriveAssociatedTokenAddress failed")
		return nil, err
	}

	data := make([]byte, accountDiscriminatorLen)
	copy(data, buyNftDiscriminator[:])

	accounts := solana.AccountMetaSlice{
		solana.NewAccountMeta(buyer, true, true),
		solana.NewAccountMeta(seller, true, false),
		solana.NewAccountMeta(mint, true, false),
		solana.NewAccountMeta(listingAccount, true, false),
		solana.NewAccountMeta(pdaTokenAccount, true, false),
		solana.NewAccountMeta(buyerTokenAccount, true, false),
		solana.NewAccountMeta(programPda, false, false),
		solana.NewAccountMeta(solana.TokenProgramID, false, false),
		solana.NewAccountMeta(solana.SPLAssociatedTokenAccountProgramID, false, false),
		solana.NewAccountMeta(solana.SystemProgramID, false, false),
		solana.NewAccountMeta(solana.SysVarRentPubkey, false, false),
	}

	return solana.NewInstruction(MarketplaceProgramID, accounts, data), nil
}

func (im *impl) Submit(c ctx.Ctx, instructions []solana.Instruction, payer solana.PublicKey, signers []solana.PrivateKey) (domain.TxSignature, error) {
	defer im.met.BumpTime("submit.latency").End()

	recent, err := im.rpc.GetLatestBlockhash(c, im.commitment)
	if err != nil {
		c.WithField("err", err).Error("GetLatestBlockhash failed")
		im.met.BumpSum("submit.err", 1, "reason", "blockhash")
		return "", xerrors.Errorf("get latest blockhash: %w", domain.ErrRPCFailure)
	}

	tx, err := solana.NewTransaction(
		instructions,
		recent.Value.Blockhash,
		solana.TransactionPayer(payer),
	)
	if err != nil {
		c.WithField("err", err).Error("NewTransaction failed")
		return "", err
	}

	_, err = tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		for i := range signers {
			if signers[i].PublicKey().Equals(key) {
				return &signers[i]
			}
		}
		return nil
	})
	if err != nil {
		c.WithField("err", err).Error("Sign failed")
		return "", err
	}

	sig, err := im.rpc.SendTransactionWithOpts(c, tx, rpc.TransactionOpts{
		PreflightCommitment: im.commitment,
	})
	if err != nil {
		c.WithField("err", err).Error("SendTransactionWithOpts failed")
		im.met.BumpSum("submit.err", 1, "reason", "send")
		return "", mapLedgerError(err)
	}

	c.WithField("signature", sig.String()).Info("transaction submitted")
	return domain.TxSignature(sig.String()), nil
}

func (im *impl) AwaitConfirmation(c ctx.Ctx, sig domain.TxSignature) error {
	defer im.met.BumpTime("confirmation.latency").End()

	signature, err := solana.SignatureFromBase58(string(sig))
	if err != nil {
		return domain.ErrBadParamInput
	}

	ticker := time.NewTicker(confirmationPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.Done():
			return c.Err()
		case <-ticker.C:
			result, err := im.rpc.GetSignatureStatuses(c, true, signature)
			if err != nil {
				c.WithField("err", err).Warn("GetSignatureStatuses failed")
				continue
			}
			if len(result.Value) == 0 || result.Value[0] == nil {
				continue
			}
			status := result.Value[0]
			if status.Err != nil {
				c.WithFields(log.Fields{
					"signature": sig,
					"err":       status.Err,
				}).Warn("transaction rejected by ledger")
				return mapLedgerStatusError(status.Err)
			}
			if status.ConfirmationStatus == rpc.ConfirmationStatusConfirmed ||
				status.ConfirmationStatus == rpc.ConfirmationStatusFinalized {
				return nil
			}
		}
	}
}

func (im *impl) GetListingAccount(c ctx.Ctx, mint solana.PublicKey) (*ListedNftAccount, error) {
	addr, err := DeriveListingAddress(mint)
	if err != nil {
		c.WithField("err", err).Error("DeriveListingAddress failed")
		return nil, err
	}

	res, err := im.rpc.GetAccountInfoWithOpts(c, addr, &rpc.GetAccountInfoOpts{
		Commitment: im.commitment,
	})
	if err == rpc.ErrNotFound {
		return nil, domain.ErrListingNotFound
	} else if err != nil {
		c.WithField("err", err).Error("GetAccountInfo failed")
		return nil, xerrors.Errorf("get listing account: %w", domain.ErrRPCFailure)
	}
	if res.Value == nil {
		return nil, domain.ErrListingNotFound
	}

	data := res.Value.Data.GetBinary()
	if len(data) <= accountDiscriminatorLen {
		return nil, domain.ErrListingNotFound
	}

	account := &ListedNftAccount{}
	if err := borsh.Deserialize(account, data[accountDiscriminatorLen:]); err != nil {
		c.WithField("err", err).Error("borsh.Deserialize failed")
		return nil, err
	}
	return account, nil
}

func (im *impl) GetBalance(c ctx.Ctx, pubkey solana.PublicKey) (domain.Lamports, error) {
	res, err := im.rpc.GetBalance(c, pubkey, im.commitment)
	if err != nil {
		c.WithField("err", err).Error("GetBalance failed")
		return 0, xerrors.Errorf("get balance: %w", domain.ErrRPCFailure)
	}
	return domain.Lamports(res.Value), nil
}

func (im *impl) GetTokenAccountBalance(c ctx.Ctx, ata solana.PublicKey) (uint64, error) {
	res, err := im.rpc.GetTokenAccountBalance(c, ata, im.commitment)
	if err != nil {
		c.WithField("err", err).Error("GetTokenAccountBalance failed")
		return 0, xerrors.Errorf("get token account balance: %w", domain.ErrRPCFailure)
	}
	if res.Value == nil {
		return 0, nil
	}
	amount, err := strconv.ParseUint(res.Value.Amount, 10, 64)
	if err != nil {
		c.WithField("err", err).Error("strconv.ParseUint failed")
		return 0, err
	}
	return amount, nil
}

func (im *impl) GetTokenAccountOwner(c ctx.Ctx, mint solana.PublicKey) (solana.PublicKey, error) {
	res, err := im.rpc.GetTokenLargestAccounts(c, mint, im.commitment)
	if err != nil {
		c.WithField("err", err).Error("GetTokenLargestAccounts failed")
		return solana.PublicKey{}, xerrors.Errorf("get token largest accounts: %w", domain.ErrRPCFailure)
	}

	var holder *solana.PublicKey
	for _, entry := range res.Value {
		if entry.Amount == "1" {
			addr := entry.Address
			holder = &addr
			break
		}
	}
	if holder == nil {
		return solana.PublicKey{}, domain.ErrNotFound
	}

	info, err := im.rpc.GetAccountInfoWithOpts(c, *holder, &rpc.GetAccountInfoOpts{
		Commitment: im.commitment,
	})
	if err != nil {
		c.WithField("err", err).Error("GetAccountInfo failed")
		return solana.PublicKey{}, xerrors.Errorf("get token account: %w", domain.ErrRPCFailure)
	}

	data := info.Value.Data.GetBinary()
	// spl token account layout: mint [0:32], owner [32:64]
	if len(data) < 64 {
		return solana.PublicKey{}, domain.ErrNotFound
	}
	return solana.PublicKeyFromBytes(data[32:64]), nil
}

// mapLedgerError translates send-time failures into the domain taxonomy.
// Program errors reach us as opaque rpc error strings, matched by substring.
func mapLedgerError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "InsufficientFunds"), strings.Contains(msg, "insufficient funds"), strings.Contains(msg, "insufficient lamports"):
		return domain.ErrInsufficientFunds
	case strings.Contains(msg, "AccountNotInitialized"), strings.Contains(msg, "could not find account"):
		return domain.ErrListingClosed
	case strings.Contains(msg, "ConstraintRaw"), strings.Contains(msg, "ConstraintHasOne"), strings.Contains(msg, "Unauthorized"):
		return domain.ErrUnauthorizedSeller
	default:
		return xerrors.Errorf("%v: %w", err, domain.ErrRPCFailure)
	}
}

// mapLedgerStatusError translates a confirmed-rejection status into the
// domain taxonomy. status.Err is an untyped json structure, match on its
// rendered form.
func mapLedgerStatusError(statusErr interface{}) error {
	msg := fmt.Sprintf("%v", statusErr)
	switch {
	// 6000 (0x1770) is the program's own InsufficientFunds custom code
	case strings.Contains(msg, "InsufficientFunds"), strings.Contains(msg, "insufficient"),
		strings.Contains(msg, "Custom:6000"), strings.Contains(msg, "0x1770"):
		return domain.ErrInsufficientFunds
	case strings.Contains(msg, "AccountNotInitialized"), strings.Contains(msg, "3012"):
		return domain.ErrListingClosed
	case strings.Contains(msg, "ConstraintRaw"), strings.Contains(msg, "ConstraintHasOne"), strings.Contains(msg, "Unauthorized"):
		return domain.ErrUnauthorizedSeller
	default:
		return xerrors.Errorf("transaction failed: %v: %w", statusErr, domain.ErrRPCFailure)
	}
}
