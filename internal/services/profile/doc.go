// Package profile manages the encrypted deployment secrets.
//
// It enforces passphrase policy on save, persists secrets via the
// domain.SecretStore, and reports display-safe fingerprints instead of
// secret values.
package profile
