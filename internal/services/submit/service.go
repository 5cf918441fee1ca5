package submit

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"amsign/internal/bls"
	"amsign/internal/domain"
	"amsign/internal/util/memzero"
)

// Service creates signing flows against a ledger client.
type Service struct {
	ledger domain.LedgerClient
}

// New returns a submit service using the given ledger client.
func New(ledger domain.LedgerClient) *Service { return &Service{ledger: ledger} }

// Submit runs the whole pipeline for one call and returns the broadcast
// result. Convenience wrapper over NewFlow + Run.
func (s *Service) Submit(ctx context.Context, seed []byte, call domain.CallRequest, network string) (domain.BroadcastResult, error) {
	flow := s.NewFlow(seed, call, network)
	return flow.Run(ctx)
}

// Flow is one pass through the signing protocol. Not safe for concurrent
// use; create one flow per transaction.
type Flow struct {
	ledger  domain.LedgerClient
	state   State
	network string

	priv domain.PrivateScalar
	pub  domain.PublicKey
	call domain.CallRequest

	unsigned  domain.UnsignedTx
	signature domain.Signature
}

// NewFlow derives the keypair for seed and prepares a flow in StateIdle. The
// derived public key becomes the signer identity of the call.
func (s *Service) NewFlow(seed []byte, call domain.CallRequest, network string) *Flow {
	priv, pub := bls.DeriveKeypair(seed)
	call.Signer = domain.Address(pub.String())
	return &Flow{
		ledger:  s.ledger,
		state:   StateIdle,
		network: network,
		priv:    priv,
		pub:     pub,
		call:    call,
	}
}

// State returns the flow's current protocol state.
func (f *Flow) State() State { return f.state }

// Signer returns the derived signer address for this flow.
func (f *Flow) Signer() domain.Address { return f.call.Signer }

// Run executes build, sign and broadcast in order. The private scalar is
// wiped before Run returns, so a flow can only run once.
func (f *Flow) Run(ctx context.Context) (domain.BroadcastResult, error) {
	defer memzero.Zero(f.priv[:])

	if err := f.buildUnsigned(ctx); err != nil {
		f.state = StateFailed
		return nil, err
	}
	if err := f.signLocally(); err != nil {
		f.state = StateFailed
		return nil, err
	}
	result, err := f.broadcast(ctx)
	if err != nil {
		f.state = StateFailed
		return nil, err
	}
	f.state = StateDone
	return result, nil
}

// buildUnsigned performs the first remote call and records the unsigned
// transaction.
func (f *Flow) buildUnsigned(ctx context.Context) error {
	if f.state != StateIdle {
		return errors.Errorf("build requested in state %s", f.state)
	}
	f.state = StateAwaitingUnsignedTx

	log.Debug().
		Str("signer", f.call.Signer.String()).
		Str("contract", f.call.Contract).
		Str("function", f.call.Function).
		Msg("requesting unsigned transaction")

	unsigned, err := f.ledger.CreateTransaction(ctx, f.call)
	if err != nil {
		return errors.WithMessage(err, "build request failed")
	}
	f.unsigned = unsigned
	return nil
}

// signLocally signs the server-attested payload. No network I/O happens in
// this transition.
func (f *Flow) signLocally() error {
	if f.state != StateAwaitingUnsignedTx {
		return errors.Errorf("sign requested in state %s", f.state)
	}

	sig, err := bls.Sign(f.priv, f.unsigned.SigningPayload)
	if err != nil {
		return err
	}
	f.signature = sig
	return nil
}

// broadcast performs the second remote call with the untouched blob and the
// local signature.
func (f *Flow) broadcast(ctx context.Context) (domain.BroadcastResult, error) {
	f.state = StateAwaitingBroadcast

	log.Debug().Str("network", f.network).Msg("submitting signed transaction")

	result, err := f.ledger.SubmitTransaction(ctx, domain.SignedTx{
		Blob:      f.unsigned.Blob,
		Signature: f.signature,
		Network:   f.network,
	})
	if err != nil {
		return nil, errors.WithMessage(err, "submit request failed")
	}
	return result, nil
}
