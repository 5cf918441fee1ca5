package rpc

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"amsign/internal/bls"
	"amsign/internal/domain"
)

// Client talks JSON-RPC 2.0 to the ledger endpoint.
type Client struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for the given endpoint URL. A nil httpClient falls
// back to http.DefaultClient; callers wanting a timeout supply their own.
func NewHTTP(base string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{Base: base, HTTP: httpClient}
}

var _ domain.LedgerClient = (*Client)(nil)

// CreateTransaction asks the service to build an unsigned transaction for the
// given call and returns the blob plus the decoded signing payload.
func (c *Client) CreateTransaction(ctx context.Context, req domain.CallRequest) (domain.UnsignedTx, error) {
	args := createArguments{
		Signer:   req.Signer.String(),
		Contract: req.Contract,
		Function: req.Function,
		Args:     req.Args,
	}
	var out unsignedTx
	if err := c.call(ctx, toolCreateTransaction, args, &out); err != nil {
		return domain.UnsignedTx{}, err
	}
	if out.Blob == "" {
		return domain.UnsignedTx{}, domain.Protocolf("create_transaction response missing blob")
	}
	payload, err := hex.DecodeString(out.SigningPayload)
	if err != nil {
		return domain.UnsignedTx{}, domain.Protocolf("signing_payload is not valid hex")
	}
	if len(payload) != bls.PayloadSize {
		return domain.UnsignedTx{}, domain.Protocolf("signing_payload must be %d bytes, got %d", bls.PayloadSize, len(payload))
	}
	return domain.UnsignedTx{Blob: out.Blob, SigningPayload: payload}, nil
}

// SubmitTransaction broadcasts a signed transaction and returns the decoded
// result payload.
func (c *Client) SubmitTransaction(ctx context.Context, tx domain.SignedTx) (domain.BroadcastResult, error) {
	args := submitArguments{
		Transaction: tx.Blob,
		Signature:   tx.Signature.String(),
		Network:     tx.Network,
	}
	var out json.RawMessage
	if err := c.call(ctx, toolSubmitTransaction, args, &out); err != nil {
		return nil, err
	}
	return domain.BroadcastResult(out), nil
}

// AccountBalance returns the balances of an account, opaque to this client.
func (c *Client) AccountBalance(ctx context.Context, address string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.call(ctx, toolAccountBalance, map[string]string{"address": address}, &out)
	return out, err
}

// ChainStats returns current chain statistics.
func (c *Client) ChainStats(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.call(ctx, toolChainStats, map[string]string{}, &out)
	return out, err
}

// Transaction looks up a transaction by hash.
func (c *Client) Transaction(ctx context.Context, hash string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.call(ctx, toolGetTransaction, map[string]string{"tx_hash": hash}, &out)
	return out, err
}

// Validators lists the current validator set.
func (c *Client) Validators(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.call(ctx, toolValidators, map[string]string{}, &out)
	return out, err
}

// call posts one tools/call request and unmarshals the nested tool result
// into out. All transport and envelope failures are mapped onto the domain
// error taxonomy.
func (c *Client) call(ctx context.Context, tool string, args any, out any) error {
	body, err := json.Marshal(request{
		JSONRPC: "2.0",
		ID:      uuid.NewString(),
		Method:  "tools/call",
		Params:  params{Name: tool, Arguments: args},
	})
	if err != nil {
		return domain.Protocolf("encode %s request: %v", tool, err)
	}

	log.Debug().Str("tool", tool).Msg("calling ledger service")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base, bytes.NewReader(body))
	if err != nil {
		return domain.Transportf("build request: %v", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return domain.Transportf("%s: %v", tool, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.Transportf("%s: %s", tool, resp.Status)
	}

	var env response
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return domain.Protocolf("%s: malformed response: %v", tool, err)
	}
	if env.Error != nil {
		log.Debug().Str("tool", tool).Int64("code", env.Error.Code).Msg("ledger service rejected call")
		return env.Error
	}
	if env.Result == nil || len(env.Result.Content) == 0 {
		return domain.Protocolf("%s: response missing result content", tool)
	}

	if err := json.Unmarshal([]byte(env.Result.Content[0].Text), out); err != nil {
		return domain.Protocolf("%s: malformed tool result: %v", tool, err)
	}
	return nil
}
