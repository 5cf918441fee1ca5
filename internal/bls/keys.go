package bls

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"amsign/internal/domain"
)

// DeriveKeypair turns a raw seed into a private scalar and its public key.
//
// The seed bytes are interpreted as a little-endian unsigned integer and
// reduced modulo the scalar field order; the deployed verifier fixes this
// byte order, so it is not a free choice. The public key is the scalar
// multiple of the G1 generator, compressed.
func DeriveKeypair(seed []byte) (domain.PrivateScalar, domain.PublicKey) {
	k := scalarFromSeed(seed)
	defer k.SetInt64(0)

	var priv domain.PrivateScalar
	k.FillBytes(priv[:])

	_, _, g1, _ := bls12381.Generators()
	var p bls12381.G1Affine
	p.ScalarMultiplication(&g1, k)

	return priv, domain.PublicKey(p.Bytes())
}

// scalarFromSeed reduces the little-endian integer form of seed below the
// scalar field order.
func scalarFromSeed(seed []byte) *big.Int {
	le := make([]byte, len(seed))
	for i, b := range seed {
		le[len(seed)-1-i] = b
	}
	k := new(big.Int).SetBytes(le)
	return k.Mod(k, fr.Modulus())
}
