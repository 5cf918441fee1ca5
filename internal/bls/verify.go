package bls

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/pkg/errors"

	"amsign/internal/domain"
)

// Verify reports whether sig is a valid signature over payload under pub and
// DomainSeparationTag. Checks e(G1, sig) == e(pub, H(payload)) via a single
// product-of-pairings evaluation.
func Verify(pub domain.PublicKey, payload []byte, sig domain.Signature) (bool, error) {
	if len(payload) != PayloadSize {
		return false, ErrInvalidPayloadLength
	}

	var p bls12381.G1Affine
	if _, err := p.SetBytes(pub[:]); err != nil {
		return false, errors.Wrap(err, "decompress public key")
	}
	var s bls12381.G2Affine
	if _, err := s.SetBytes(sig[:]); err != nil {
		return false, errors.Wrap(err, "decompress signature")
	}

	point, err := bls12381.HashToG2(payload, []byte(DomainSeparationTag))
	if err != nil {
		return false, errors.Wrap(err, "hash payload to curve")
	}

	_, _, g1, _ := bls12381.Generators()
	var negG1 bls12381.G1Affine
	negG1.Neg(&g1)

	ok, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{negG1, p},
		[]bls12381.G2Affine{s, point},
	)
	if err != nil {
		return false, errors.Wrap(err, "pairing check")
	}
	return ok, nil
}
