package domain

import (
	"context"
	"encoding/json"
)

// SeedStore persists the signing seed encrypted under a passphrase.
type SeedStore interface {
	SaveSeed(passphrase string, seed []byte) error
	LoadSeed(passphrase string) ([]byte, error)
	HasSeed() bool
}

// WalletService manages the seed lifecycle and key derivation.
type WalletService interface {
	Generate() (seed []byte, addr Address, err error)
	Import(passphrase, seedText string) (Address, error)
	Load(passphrase string) ([]byte, error)
	AddressOf(seed []byte) Address
}

// LedgerClient is how we talk to the remote ledger service. The two
// transaction calls are the signing protocol; the rest mirror the service's
// read-only tool surface.
type LedgerClient interface {
	CreateTransaction(ctx context.Context, req CallRequest) (UnsignedTx, error)
	SubmitTransaction(ctx context.Context, tx SignedTx) (BroadcastResult, error)

	AccountBalance(ctx context.Context, address string) (json.RawMessage, error)
	ChainStats(ctx context.Context) (json.RawMessage, error)
	Transaction(ctx context.Context, hash string) (json.RawMessage, error)
	Validators(ctx context.Context) (json.RawMessage, error)
}
