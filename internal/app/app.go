package app

import (
	"net/http"

	"amsign/internal/domain"
	"amsign/internal/rpc"
	"amsign/internal/services/submit"
	"amsign/internal/services/wallet"
	"amsign/internal/store"
)

// App bundles the store, services and ledger client for the CLI.
type App struct {
	Config Config
	Store  domain.SeedStore
	Wallet domain.WalletService
	Ledger domain.LedgerClient
	Submit *submit.Service
}

// New constructs the dependency graph from cfg.
func New(cfg Config) *App {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Network == "" {
		cfg.Network = DefaultNetwork
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	seedStore := store.NewFileStore(cfg.Home)
	ledger := rpc.NewHTTP(cfg.Endpoint, httpClient)

	return &App{
		Config: cfg,
		Store:  seedStore,
		Wallet: wallet.New(seedStore),
		Ledger: ledger,
		Submit: submit.New(ledger),
	}
}
