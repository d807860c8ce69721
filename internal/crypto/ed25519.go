package crypto

import (
	"crypto/ed25519"
	"crypto/rand"

	"shapes/internal/domain"
)

// GenerateEd25519 returns a fresh signing key pair for attestation tokens.
func GenerateEd25519() (priv domain.Ed25519Private, pub domain.Ed25519Public, err error) {
	pk, sk, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return priv, pub, err
	}
	copy(priv[:], sk)
	copy(pub[:], pk)
	return priv, pub, nil
}

// SigningKey views priv as the key type jwt's EdDSA method signs with.
func SigningKey(priv domain.Ed25519Private) ed25519.PrivateKey {
	return ed25519.PrivateKey(priv[:])
}

// VerifyingKey views pub as the key type jwt's EdDSA method verifies with.
func VerifyingKey(pub domain.Ed25519Public) ed25519.PublicKey {
	return ed25519.PublicKey(pub[:])
}
