package rpc

import (
	"encoding/json"

	"amsign/internal/domain"
)

// Tool names exposed by the ledger service.
const (
	toolCreateTransaction = "create_transaction"
	toolSubmitTransaction = "submit_transaction"
	toolAccountBalance    = "get_account_balance"
	toolChainStats        = "get_chain_stats"
	toolGetTransaction    = "get_transaction"
	toolValidators        = "get_validators"
)

type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  params `json:"params"`
}

type params struct {
	Name      string `json:"name"`
	Arguments any    `json:"arguments"`
}

type response struct {
	JSONRPC string              `json:"jsonrpc"`
	ID      json.RawMessage     `json:"id"`
	Result  *result             `json:"result"`
	Error   *domain.RemoteError `json:"error"`
}

type result struct {
	Content []content `json:"content"`
}

type content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// createArguments is the argument shape of create_transaction.
type createArguments struct {
	Signer   string          `json:"signer"`
	Contract string          `json:"contract"`
	Function string          `json:"function"`
	Args     json.RawMessage `json:"args"`
}

// unsignedTx is the JSON carried in the create_transaction tool result.
type unsignedTx struct {
	Blob           string `json:"blob"`
	SigningPayload string `json:"signing_payload"`
}

// submitArguments is the argument shape of submit_transaction.
type submitArguments struct {
	Transaction string `json:"transaction"`
	Signature   string `json:"signature"`
	Network     string `json:"network"`
}
