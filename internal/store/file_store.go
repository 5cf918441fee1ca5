package store

import (
	"os"
	"path/filepath"
	"sync"

	"amsign/internal/domain"
)

const seedFile = "seed.enc"

// FileStore stores the encrypted seed in a directory on disk.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

var _ domain.SeedStore = (*FileStore)(nil)

// SaveSeed encrypts seed under passphrase and writes it to disk.
func (s *FileStore) SaveSeed(passphrase string, seed []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	time, memory, threads := argon2ParamsDefault()
	b, err := encrypt(passphrase, seed, time, memory, threads)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, seedFile), b, 0o600)
}

// LoadSeed reads and decrypts the stored seed.
func (s *FileStore) LoadSeed(passphrase string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(filepath.Join(s.dir, seedFile))
	if err != nil {
		return nil, err
	}
	return decrypt(passphrase, b)
}

// HasSeed reports whether a seed file exists.
func (s *FileStore) HasSeed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := os.Stat(filepath.Join(s.dir, seedFile))
	return err == nil
}
