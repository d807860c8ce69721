package store

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"sync"

	"shapes/internal/crypto"
	"shapes/internal/domain"
)

const secretsFilename = "secrets.json.enc"

// ErrNoSecrets is returned by LoadSecrets before anything was saved.
var ErrNoSecrets = errors.New("no saved secrets")

// SecretFileStore persists deployment secrets to disk.
type SecretFileStore struct {
	dir string
	kdf kdfParams
	mu  sync.Mutex
}

// NewSecretFileStore returns a SecretFileStore rooted at dir.
func NewSecretFileStore(dir string) *SecretFileStore {
	return &SecretFileStore{dir: dir, kdf: defaultKDF}
}

// Path is the location of the encrypted file.
func (s *SecretFileStore) Path() string { return filepath.Join(s.dir, secretsFilename) }

// SaveSecrets writes the encrypted secrets to disk, replacing previous ones.
func (s *SecretFileStore) SaveSecrets(passphrase string, secrets domain.Secrets) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(secrets)
	if err != nil {
		return err
	}
	defer crypto.Wipe(raw)
	ct, err := seal(passphrase, raw, s.kdf)
	if err != nil {
		return err
	}
	return writeFile(s.Path(), ct, 0o600)
}

// LoadSecrets reads and decrypts the secrets.
func (s *SecretFileStore) LoadSecrets(passphrase string) (domain.Secrets, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.Path())
	if err != nil {
		return domain.Secrets{}, err
	}
	if b == nil {
		return domain.Secrets{}, ErrNoSecrets
	}
	pt, err := open(passphrase, b)
	if err != nil {
		return domain.Secrets{}, err
	}
	defer crypto.Wipe(pt)
	var out domain.Secrets
	if err := json.Unmarshal(pt, &out); err != nil {
		return domain.Secrets{}, err
	}
	return out, nil
}

// Compile-time assertion that SecretFileStore implements domain.SecretStore.
var _ domain.SecretStore = (*SecretFileStore)(nil)
