package bls_test

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"

	"amsign/internal/bls"
	"amsign/internal/domain"
)

func TestSign_VerifiesUnderOwnKey(t *testing.T) {
	priv, pub := bls.DeriveKeypair(seedOf(0xa5))
	payload := sha256.Sum256([]byte("transaction body"))

	sig, err := bls.Sign(priv, payload[:])
	require.NoError(t, err)

	ok, err := bls.Verify(pub, payload[:], sig)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSign_Deterministic(t *testing.T) {
	priv, _ := bls.DeriveKeypair(seedOf(0x11))
	payload := sha256.Sum256([]byte("same input"))

	sig1, err := bls.Sign(priv, payload[:])
	require.NoError(t, err)
	sig2, err := bls.Sign(priv, payload[:])
	require.NoError(t, err)

	require.Equal(t, sig1, sig2)
}

func TestVerify_RejectsAlteredPayload(t *testing.T) {
	priv, pub := bls.DeriveKeypair(seedOf(0xa5))
	payload := sha256.Sum256([]byte("transaction body"))

	sig, err := bls.Sign(priv, payload[:])
	require.NoError(t, err)

	flipped := payload
	flipped[0] ^= 0x01
	ok, err := bls.Verify(pub, flipped[:], sig)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerify_RejectsOtherPublicKey(t *testing.T) {
	priv, _ := bls.DeriveKeypair(seedOf(0xa5))
	_, otherPub := bls.DeriveKeypair(seedOf(0x5a))
	payload := sha256.Sum256([]byte("transaction body"))

	sig, err := bls.Sign(priv, payload[:])
	require.NoError(t, err)

	ok, err := bls.Verify(otherPub, payload[:], sig)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSign_RejectsWrongPayloadLength(t *testing.T) {
	priv, _ := bls.DeriveKeypair(seedOf(0x01))

	_, err := bls.Sign(priv, []byte("short"))
	require.ErrorIs(t, err, bls.ErrInvalidPayloadLength)
}

func TestSignature_Base58RoundTrip(t *testing.T) {
	priv, _ := bls.DeriveKeypair(seedOf(0x77))
	payload := sha256.Sum256([]byte("round trip"))

	sig, err := bls.Sign(priv, payload[:])
	require.NoError(t, err)

	parsed, err := domain.ParseSignature(sig.String())
	require.NoError(t, err)
	require.Equal(t, sig, parsed)
}
