package bls

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/pkg/errors"

	"amsign/internal/domain"
)

// DomainSeparationTag keys the hash-to-curve mapping for transaction
// signatures. It identifies this protocol's scheme and version on the wire.
const DomainSeparationTag = "AMADEUS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_TX_"

// PayloadSize is the width of a signing payload.
const PayloadSize = 32

// ErrInvalidPayloadLength is returned when a payload is not PayloadSize bytes.
var ErrInvalidPayloadLength = errors.New("bls: signing payload must be 32 bytes")

// Sign maps payload onto G2 under DomainSeparationTag and multiplies the
// resulting point by priv. Deterministic: no nonce is involved, which is safe
// for this pairing-based scheme.
func Sign(priv domain.PrivateScalar, payload []byte) (domain.Signature, error) {
	if len(payload) != PayloadSize {
		return domain.Signature{}, ErrInvalidPayloadLength
	}

	point, err := bls12381.HashToG2(payload, []byte(DomainSeparationTag))
	if err != nil {
		return domain.Signature{}, errors.Wrap(err, "hash payload to curve")
	}

	k := new(big.Int).SetBytes(priv[:])
	defer k.SetInt64(0)

	var sig bls12381.G2Affine
	sig.ScalarMultiplication(&point, k)

	return domain.Signature(sig.Bytes()), nil
}
