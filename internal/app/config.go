package app

import (
	"net/http"
	"time"
)

// Defaults for the ledger endpoint and submit target.
const (
	DefaultEndpoint = "https://nodes.amadeus.bot"
	DefaultNetwork  = "mainnet"
	DefaultTimeout  = 30 * time.Second
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home     string        // config directory, e.g. $HOME/.amsign
	Endpoint string        // ledger JSON-RPC endpoint URL
	Network  string        // network tag used on submit
	Timeout  time.Duration // per-invocation deadline for remote calls
	HTTP     *http.Client  // optional; defaults to a client with Timeout set
}
