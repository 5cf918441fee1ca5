package domain

import "encoding/json"

// CallRequest identifies the contract call a transaction should perform.
// Args is an arbitrary JSON array forwarded opaquely to the ledger; this
// client has no knowledge of contract argument schemas.
type CallRequest struct {
	Signer   Address
	Contract string
	Function string
	Args     json.RawMessage
}

// UnsignedTx is the ledger's answer to a build request: an opaque transaction
// blob plus the 32-byte hash the client must sign. The blob is passed back
// unmodified on submit.
type UnsignedTx struct {
	Blob           string
	SigningPayload []byte
}

// SignedTx pairs the untouched blob with the locally produced signature and
// the network it should be broadcast on.
type SignedTx struct {
	Blob      string
	Signature Signature
	Network   string
}

// BroadcastResult is the decoded submit response, opaque to this client.
type BroadcastResult = json.RawMessage
