package domain

import (
	interfaces "shapes/internal/domain/interfaces"
	types "shapes/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Variant            = types.Variant
	ShapeSource        = types.ShapeSource
	Fingerprint        = types.Fingerprint
	CredentialKind     = types.CredentialKind
	Credential         = types.Credential
	EmbeddedStatus     = types.EmbeddedStatus
	Payload            = types.Payload
	AuthReason         = types.AuthReason
	AuthError          = types.AuthError
	HTTPError          = types.HTTPError
	TransportError     = types.TransportError
	ApplicationError   = types.ApplicationError
	Secrets            = types.Secrets
	SecretFingerprints = types.SecretFingerprints
	Ed25519Public      = types.Ed25519Public
	Ed25519Private     = types.Ed25519Private
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	CredentialProvider = interfaces.CredentialProvider
	ChallengeWidget    = interfaces.ChallengeWidget
	Attester           = interfaces.Attester
	FetchOptions       = interfaces.FetchOptions
	SessionConfig      = interfaces.SessionConfig
	FlowService        = interfaces.FlowService
	ProfileService     = interfaces.ProfileService
	SecretStore        = interfaces.SecretStore
)

// Re-exported constants.
const (
	VariantAPIKey    = types.VariantAPIKey
	VariantRecaptcha = types.VariantRecaptcha
	VariantApproov   = types.VariantApproov

	ShapeFromServer = types.ShapeFromServer
	ShapeFromClient = types.ShapeFromClient

	PathHello  = types.PathHello
	PathShapes = types.PathShapes

	StaticKey        = types.StaticKey
	RecaptchaToken   = types.RecaptchaToken
	AttestationToken = types.AttestationToken

	HeaderAPIKey         = types.HeaderAPIKey
	HeaderRecaptchaToken = types.HeaderRecaptchaToken
	HeaderApproovToken   = types.HeaderApproovToken

	ChallengeFailed   = types.ChallengeFailed
	AttestationFailed = types.AttestationFailed
)

// Variants lists every supported variant.
var Variants = types.Variants
