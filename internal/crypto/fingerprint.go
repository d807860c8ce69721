package crypto

import (
	"crypto/sha256"
	"encoding/hex"

	"shapes/internal/domain"
)

// Fingerprint returns a short hex fingerprint of a secret or public key.
//
// It hashes with SHA-256 and truncates to 10 bytes (20 hex chars). An empty
// input yields an empty fingerprint.
func Fingerprint(b []byte) domain.Fingerprint {
	if len(b) == 0 {
		return ""
	}
	sum := sha256.Sum256(b)
	return domain.Fingerprint(hex.EncodeToString(sum[:10]))
}
