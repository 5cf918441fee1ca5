// Package bls implements the signing primitives used by amsign.
//
// Contents
//
//   - Deterministic keypair derivation from a raw seed (DeriveKeypair)
//   - BLS signing of a server-supplied 32-byte payload (Sign)
//   - Pairing-based verification for diagnostics and tests (Verify)
//
// # Notes
//
// The scheme is the minimal-pubkey-size BLS12-381 variant: public keys live
// in G1 (48 bytes compressed), signatures in G2 (96 bytes compressed).
// Payloads are hashed to G2 with the fixed domain-separation tag
// DomainSeparationTag; that string is part of the wire contract and changing
// it breaks verification against any deployed verifier.
package bls
