package profile

import (
	"fmt"
	"unicode"

	"shapes/internal/crypto"
	"shapes/internal/domain"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
	// ErrNothingToSave is returned when every secret is empty.
	ErrNothingToSave = fmt.Errorf("no secrets given")
)

// Service manages the deployment secrets using a backing store.
type Service struct {
	store domain.SecretStore
}

// New returns a profile service backed by the given store.
func New(s domain.SecretStore) *Service { return &Service{store: s} }

// SaveSecrets encrypts s with passphrase, replacing the saved secrets, and
// returns their fingerprints. Empty fields keep their saved values.
func (svc *Service) SaveSecrets(passphrase string, s domain.Secrets) (domain.SecretFingerprints, error) {
	if !isSecurePassphrase(passphrase) {
		return domain.SecretFingerprints{}, ErrWeakPassphrase
	}
	if s.Empty() {
		return domain.SecretFingerprints{}, ErrNothingToSave
	}
	if prev, err := svc.store.LoadSecrets(passphrase); err == nil {
		s = merge(prev, s)
	}
	if err := svc.store.SaveSecrets(passphrase, s); err != nil {
		return domain.SecretFingerprints{}, err
	}
	return fingerprints(s), nil
}

// LoadSecrets decrypts and returns the saved secrets.
func (svc *Service) LoadSecrets(passphrase string) (domain.Secrets, error) {
	return svc.store.LoadSecrets(passphrase)
}

// FingerprintSecrets returns short fingerprints of the saved secrets.
func (svc *Service) FingerprintSecrets(passphrase string) (domain.SecretFingerprints, error) {
	s, err := svc.store.LoadSecrets(passphrase)
	if err != nil {
		return domain.SecretFingerprints{}, err
	}
	return fingerprints(s), nil
}

func merge(prev, next domain.Secrets) domain.Secrets {
	if next.APIKey == "" {
		next.APIKey = prev.APIKey
	}
	if next.RecaptchaSiteKey == "" {
		next.RecaptchaSiteKey = prev.RecaptchaSiteKey
	}
	if next.ApproovSiteKey == "" {
		next.ApproovSiteKey = prev.ApproovSiteKey
	}
	return next
}

func fingerprints(s domain.Secrets) domain.SecretFingerprints {
	return domain.SecretFingerprints{
		APIKey:           crypto.Fingerprint([]byte(s.APIKey)),
		RecaptchaSiteKey: crypto.Fingerprint([]byte(s.RecaptchaSiteKey)),
		ApproovSiteKey:   crypto.Fingerprint([]byte(s.ApproovSiteKey)),
	}
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.ProfileService.
var _ domain.ProfileService = (*Service)(nil)
