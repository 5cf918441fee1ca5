package rpc_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"amsign/internal/domain"
	"amsign/internal/rpc"
)

// toolResult wraps text the way the ledger service nests tool output.
func toolResult(text string) string {
	body, _ := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      "1",
		"result": map[string]any{
			"content": []map[string]string{{"type": "text", "text": text}},
		},
	})
	return string(body)
}

func callReq() domain.CallRequest {
	return domain.CallRequest{
		Signer:   domain.Address("signer"),
		Contract: "Coin",
		Function: "transfer",
		Args:     json.RawMessage(`["bob","100","AMA"]`),
	}
}

func TestCreateTransaction_OK(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(toolResult(`{"blob":"b1","signing_payload":"` + strings.Repeat("00", 32) + `"}`)))
	}))
	defer srv.Close()

	c := rpc.NewHTTP(srv.URL, srv.Client())
	tx, err := c.CreateTransaction(context.Background(), callReq())
	if err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}
	if tx.Blob != "b1" {
		t.Fatalf("want blob b1, got %q", tx.Blob)
	}
	if len(tx.SigningPayload) != 32 {
		t.Fatalf("want 32-byte payload, got %d", len(tx.SigningPayload))
	}

	if got["jsonrpc"] != "2.0" || got["method"] != "tools/call" {
		t.Fatalf("bad envelope: %v", got)
	}
	params := got["params"].(map[string]any)
	if params["name"] != "create_transaction" {
		t.Fatalf("want create_transaction, got %v", params["name"])
	}
	args := params["arguments"].(map[string]any)
	if args["signer"] != "signer" || args["contract"] != "Coin" || args["function"] != "transfer" {
		t.Fatalf("bad arguments: %v", args)
	}
}

func TestCreateTransaction_RemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":"1","error":{"code":-32603,"message":"insufficient_balance"}}`))
	}))
	defer srv.Close()

	c := rpc.NewHTTP(srv.URL, srv.Client())
	_, err := c.CreateTransaction(context.Background(), callReq())

	var remote *domain.RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("want RemoteError, got %v", err)
	}
	if remote.Message != "insufficient_balance" {
		t.Fatalf("server detail lost: %v", remote)
	}
}

func TestCreateTransaction_ShortPayloadIsProtocolViolation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(toolResult(`{"blob":"b1","signing_payload":"abcd"}`)))
	}))
	defer srv.Close()

	c := rpc.NewHTTP(srv.URL, srv.Client())
	_, err := c.CreateTransaction(context.Background(), callReq())
	if !errors.Is(err, domain.ErrProtocol) {
		t.Fatalf("want ErrProtocol, got %v", err)
	}
}

func TestCreateTransaction_MissingBlobIsProtocolViolation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(toolResult(`{"signing_payload":"` + strings.Repeat("00", 32) + `"}`)))
	}))
	defer srv.Close()

	c := rpc.NewHTTP(srv.URL, srv.Client())
	_, err := c.CreateTransaction(context.Background(), callReq())
	if !errors.Is(err, domain.ErrProtocol) {
		t.Fatalf("want ErrProtocol, got %v", err)
	}
}

func TestCall_Non2xxIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := rpc.NewHTTP(srv.URL, srv.Client())
	_, err := c.ChainStats(context.Background())
	if !errors.Is(err, domain.ErrTransport) {
		t.Fatalf("want ErrTransport, got %v", err)
	}
}

func TestSubmitTransaction_SendsBlobAndSignature(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(toolResult(`{"transaction_hash":"h","status":"pending"}`)))
	}))
	defer srv.Close()

	c := rpc.NewHTTP(srv.URL, srv.Client())
	res, err := c.SubmitTransaction(context.Background(), domain.SignedTx{
		Blob:      "blob-1",
		Signature: domain.Signature{0x01},
		Network:   "mainnet",
	})
	if err != nil {
		t.Fatalf("SubmitTransaction: %v", err)
	}
	if !strings.Contains(string(res), "transaction_hash") {
		t.Fatalf("result not surfaced: %s", res)
	}

	args := got["params"].(map[string]any)["arguments"].(map[string]any)
	if args["transaction"] != "blob-1" {
		t.Fatalf("blob not passed through: %v", args)
	}
	if args["network"] != "mainnet" {
		t.Fatalf("network missing: %v", args)
	}
	if args["signature"] == "" {
		t.Fatal("signature missing")
	}
}
