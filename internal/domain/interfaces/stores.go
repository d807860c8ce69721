package interfaces

import domaintypes "shapes/internal/domain/types"

// SecretStore persists deployment secrets encrypted under a passphrase.
type SecretStore interface {
	SaveSecrets(passphrase string, s domaintypes.Secrets) error
	LoadSecrets(passphrase string) (domaintypes.Secrets, error)
}
