package domain

import (
	"github.com/gagliardetto/solana-go"
)

// Wallet is an explicit signing identity handed to each pipeline
// invocation, there is no ambient connected-wallet state
type Wallet struct {
	PrivateKey solana.PrivateKey
}

func NewWallet(key solana.PrivateKey) *Wallet {
	return &Wallet{PrivateKey: key}
}

func NewWalletFromKeygenFile(path string) (*Wallet, error) {
	key, err := solana.PrivateKeyFromSolanaKeygenFile(path)
	if err != nil {
		return nil, err
	}
	return &Wallet{PrivateKey: key}, nil
}

func NewRandomWallet() (*Wallet, error) {
	key, err := solana.NewRandomPrivateKey()
	if err != nil {
		return nil, err
	}
	return &Wallet{PrivateKey: key}, nil
}

func (w *Wallet) PublicKey() solana.PublicKey {
	return w.PrivateKey.PublicKey()
}

func (w *Wallet) Address() Address {
	return Address(w.PrivateKey.PublicKey().String())
}
