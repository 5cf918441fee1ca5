package domain

import "github.com/mr-tron/base58"

// SeedSize is the length of a freshly generated signing seed. Imported seeds
// may be shorter or longer; derivation reduces them modulo the scalar field.
const SeedSize = 64

// PrivateScalar is a BLS12-381 private key scalar, big-endian, already
// reduced below the scalar field order.
type PrivateScalar [32]byte

// Slice returns the scalar as a []byte.
func (k PrivateScalar) Slice() []byte { return k[:] }

// PublicKey is a compressed BLS12-381 G1 point (min-pubkey-size variant).
type PublicKey [48]byte

// Slice returns the key as a []byte.
func (p PublicKey) Slice() []byte { return p[:] }

// String returns the base58 transport encoding of the key.
func (p PublicKey) String() string { return base58.Encode(p[:]) }

// Signature is a compressed BLS12-381 G2 point.
type Signature [96]byte

// Slice returns the signature as a []byte.
func (s Signature) Slice() []byte { return s[:] }

// String returns the base58 transport encoding of the signature.
func (s Signature) String() string { return base58.Encode(s[:]) }

// Address is the base58 form of a public key, used as the signer identity
// on the wire.
type Address string

// String returns the string form of the address.
func (a Address) String() string { return string(a) }

// ParsePublicKey decodes a base58 address back into a compressed public key.
func ParsePublicKey(addr string) (PublicKey, error) {
	var pub PublicKey
	raw, err := base58.Decode(addr)
	if err != nil {
		return pub, WrapDecode(err, "public key is not valid base58")
	}
	if len(raw) != len(pub) {
		return pub, Decodef("public key must be %d bytes, got %d", len(pub), len(raw))
	}
	copy(pub[:], raw)
	return pub, nil
}

// ParseSignature decodes a base58 signature string.
func ParseSignature(text string) (Signature, error) {
	var sig Signature
	raw, err := base58.Decode(text)
	if err != nil {
		return sig, WrapDecode(err, "signature is not valid base58")
	}
	if len(raw) != len(sig) {
		return sig, Decodef("signature must be %d bytes, got %d", len(sig), len(raw))
	}
	copy(sig[:], raw)
	return sig, nil
}

// DecodeSeed decodes the base58 transport form of a seed into raw bytes.
// The private key never appears in the returned error.
func DecodeSeed(text string) ([]byte, error) {
	raw, err := base58.Decode(text)
	if err != nil {
		return nil, Decodef("seed is not valid base58")
	}
	if len(raw) == 0 {
		return nil, Decodef("seed is empty")
	}
	return raw, nil
}

// EncodeSeed returns the base58 transport form of a raw seed.
func EncodeSeed(seed []byte) string { return base58.Encode(seed) }
