package types

// CredentialKind identifies how a credential was obtained and which header
// carries it.
type CredentialKind int

const (
	// StaticKey is a fixed API key from configuration.
	StaticKey CredentialKind = iota + 1
	// RecaptchaToken is a one-time challenge solution.
	RecaptchaToken
	// AttestationToken is a short-lived token from the attester.
	AttestationToken
)

// Header names, one per credential kind.
const (
	HeaderAPIKey         = "Api-Key"
	HeaderRecaptchaToken = "Recaptcha-Token"
	HeaderApproovToken   = "Approov-Token"
)

// Header returns the request header that conveys credentials of kind k.
func (k CredentialKind) Header() string {
	switch k {
	case StaticKey:
		return HeaderAPIKey
	case RecaptchaToken:
		return HeaderRecaptchaToken
	case AttestationToken:
		return HeaderApproovToken
	default:
		return ""
	}
}

func (k CredentialKind) String() string {
	switch k {
	case StaticKey:
		return "static-key"
	case RecaptchaToken:
		return "recaptcha-token"
	case AttestationToken:
		return "attestation-token"
	default:
		return "unknown"
	}
}

// Credential is a value obtained for a single request attempt. It is never
// persisted.
type Credential struct {
	Kind  CredentialKind
	Value string
}

// Empty reports whether c carries nothing worth sending.
func (c Credential) Empty() bool { return c.Kind.Header() == "" || c.Value == "" }

// String never reveals the credential value.
func (c Credential) String() string { return c.Kind.String() }
