package interfaces

import (
	"context"

	domaintypes "shapes/internal/domain/types"
)

// CredentialProvider produces the credentials for one request attempt
// against target (the API domain).
type CredentialProvider interface {
	Obtain(ctx context.Context, target string) ([]domaintypes.Credential, error)
}

// ChallengeWidget runs a bot-detection challenge and returns its one-time
// solution token.
type ChallengeWidget interface {
	Execute(ctx context.Context, siteKey, action string) (string, error)
}

// FlowService runs the user-triggered flows.
type FlowService interface {
	Hello(ctx context.Context) error
	Shape(ctx context.Context) (string, error)
}

// ProfileService manages the encrypted deployment secrets.
type ProfileService interface {
	SaveSecrets(passphrase string, s domaintypes.Secrets) (domaintypes.SecretFingerprints, error)
	LoadSecrets(passphrase string) (domaintypes.Secrets, error)
	FingerprintSecrets(passphrase string) (domaintypes.SecretFingerprints, error)
}
