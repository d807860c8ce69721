package interfaces

import "context"

// FetchOptions carry optional context for a token request.
type FetchOptions struct {
	RecaptchaToken string
}

// SessionConfig initialises an attestation session.
type SessionConfig struct {
	Host             string
	SiteKey          string
	RecaptchaSiteKey string
}

// Attester issues attestation tokens for an API domain.
type Attester interface {
	FetchToken(ctx context.Context, domain string, opts FetchOptions) (string, error)
	InitializeSession(ctx context.Context, cfg SessionConfig) error
}
