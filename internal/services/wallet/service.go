package wallet

import (
	"crypto/rand"
	"fmt"
	"unicode"

	"amsign/internal/bls"
	"amsign/internal/domain"
	"amsign/internal/util/memzero"
)

const (
	// minPassphraseLength defines the minimum number of characters required
	// for a keystore passphrase.
	minPassphraseLength = 10
)

// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
var ErrWeakPassphrase = fmt.Errorf(
	"passphrase is too weak (must be at least %d characters and mix letter classes or digits)",
	minPassphraseLength,
)

// Service manages seed creation and access using a backing store.
type Service struct {
	store domain.SeedStore
}

// New returns a wallet service backed by the given store.
func New(s domain.SeedStore) *Service { return &Service{store: s} }

// Generate creates a fresh random seed and returns it with its address.
// Nothing is persisted; the caller decides whether to import it.
func (s *Service) Generate() ([]byte, domain.Address, error) {
	seed := make([]byte, domain.SeedSize)
	if _, err := rand.Read(seed); err != nil {
		return nil, "", err
	}
	return seed, s.AddressOf(seed), nil
}

// Import decodes seedText, saves it encrypted with the passphrase, and
// returns the derived address.
func (s *Service) Import(passphrase, seedText string) (domain.Address, error) {
	if !isSecurePassphrase(passphrase) {
		return "", ErrWeakPassphrase
	}
	seed, err := domain.DecodeSeed(seedText)
	if err != nil {
		return "", err
	}
	defer memzero.Zero(seed)

	if err := s.store.SaveSeed(passphrase, seed); err != nil {
		return "", err
	}
	return s.AddressOf(seed), nil
}

// Load decrypts and returns the stored seed. The caller owns the bytes and
// should wipe them when done.
func (s *Service) Load(passphrase string) ([]byte, error) {
	return s.store.LoadSeed(passphrase)
}

// AddressOf derives the public key for seed and returns its address form.
func (s *Service) AddressOf(seed []byte) domain.Address {
	priv, pub := bls.DeriveKeypair(seed)
	memzero.Zero(priv[:])
	return domain.Address(pub.String())
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	if len(passphrase) < minPassphraseLength {
		return false
	}
	var classes int
	var hasUpper, hasLower, hasDigit, hasOther bool
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasOther = true
		}
	}
	for _, ok := range []bool{hasUpper, hasLower, hasDigit, hasOther} {
		if ok {
			classes++
		}
	}
	return classes >= 2
}

// Compile-time assertion that Service implements domain.WalletService.
var _ domain.WalletService = (*Service)(nil)
