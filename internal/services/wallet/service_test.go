package wallet_test

import (
	"errors"
	"testing"

	"amsign/internal/domain"
	"amsign/internal/services/wallet"
	"amsign/internal/store"
)

func newService(t *testing.T) *wallet.Service {
	t.Helper()
	return wallet.New(store.NewFileStore(t.TempDir()))
}

func TestGenerateImportLoad_RoundTrip(t *testing.T) {
	svc := newService(t)

	seed, addr, err := svc.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(seed) != domain.SeedSize {
		t.Fatalf("want %d-byte seed, got %d", domain.SeedSize, len(seed))
	}

	importedAddr, err := svc.Import("correct horse 9", domain.EncodeSeed(seed))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if importedAddr != addr {
		t.Fatalf("address changed across import: %s vs %s", importedAddr, addr)
	}

	loaded, err := svc.Load("correct horse 9")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if svc.AddressOf(loaded) != addr {
		t.Fatal("loaded seed derives a different address")
	}
}

func TestImport_RejectsWeakPassphrase(t *testing.T) {
	svc := newService(t)

	if _, err := svc.Import("short", "3yZe7d"); err != wallet.ErrWeakPassphrase {
		t.Fatalf("want ErrWeakPassphrase, got %v", err)
	}
}

func TestImport_RejectsMalformedSeed(t *testing.T) {
	svc := newService(t)

	// 0, O, I and l are outside the base58 alphabet.
	_, err := svc.Import("a strong passphrase 1", "0OIl!!")
	if !errors.Is(err, domain.ErrDecode) {
		t.Fatalf("want ErrDecode, got %v", err)
	}
}
