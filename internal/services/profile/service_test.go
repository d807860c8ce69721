package profile_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapes/internal/crypto"
	"shapes/internal/domain"
	"shapes/internal/services/profile"
	"shapes/internal/store"
)

const strong = "Correct-Horse-9-Battery"

// memStore keeps secrets in memory, keyed by passphrase.
type memStore struct {
	saved map[string]domain.Secrets
}

func (m *memStore) SaveSecrets(passphrase string, s domain.Secrets) error {
	if m.saved == nil {
		m.saved = map[string]domain.Secrets{}
	}
	m.saved[passphrase] = s
	return nil
}

func (m *memStore) LoadSecrets(passphrase string) (domain.Secrets, error) {
	s, ok := m.saved[passphrase]
	if !ok {
		return domain.Secrets{}, store.ErrNoSecrets
	}
	return s, nil
}

func TestSaveSecrets_WeakPassphrase(t *testing.T) {
	svc := profile.New(&memStore{})
	for _, p := range []string{"", "short1!A", "alllowercase-123", "NoDigitsHere!!"} {
		_, err := svc.SaveSecrets(p, domain.Secrets{APIKey: "k"})
		assert.ErrorIs(t, err, profile.ErrWeakPassphrase, p)
	}
}

func TestSaveSecrets_Empty(t *testing.T) {
	_, err := profile.New(&memStore{}).SaveSecrets(strong, domain.Secrets{})
	assert.ErrorIs(t, err, profile.ErrNothingToSave)
}

func TestSaveSecrets_MergesAndFingerprints(t *testing.T) {
	ms := &memStore{}
	svc := profile.New(ms)

	_, err := svc.SaveSecrets(strong, domain.Secrets{APIKey: "key", ApproovSiteKey: "ap"})
	require.NoError(t, err)
	fps, err := svc.SaveSecrets(strong, domain.Secrets{RecaptchaSiteKey: "rc"})
	require.NoError(t, err)

	got, err := svc.LoadSecrets(strong)
	require.NoError(t, err)
	assert.Equal(t, domain.Secrets{APIKey: "key", RecaptchaSiteKey: "rc", ApproovSiteKey: "ap"}, got)
	assert.Equal(t, crypto.Fingerprint([]byte("key")), fps.APIKey)
	assert.NotContains(t, string(fps.APIKey), "key")

	again, err := svc.FingerprintSecrets(strong)
	require.NoError(t, err)
	assert.Equal(t, fps, again)
}

func TestFingerprintSecrets_Missing(t *testing.T) {
	_, err := profile.New(&memStore{}).FingerprintSecrets(strong)
	assert.True(t, errors.Is(err, store.ErrNoSecrets))
}
