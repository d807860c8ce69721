package types

// Variant names a deployment flavour of the shapes client. Variants differ
// only in how the outbound request is authenticated.
type Variant string

const (
	// VariantAPIKey sends a static Api-Key header.
	VariantAPIKey Variant = "api-key"
	// VariantRecaptcha sends a reCAPTCHA v3 token.
	VariantRecaptcha Variant = "recaptcha"
	// VariantApproov sends the static key plus an attestation token.
	VariantApproov Variant = "approov"
)

// Variants lists every supported variant in display order.
var Variants = []Variant{VariantAPIKey, VariantRecaptcha, VariantApproov}

// String returns the string form of the variant.
func (v Variant) String() string { return string(v) }

// Valid reports whether v is a known variant.
func (v Variant) Valid() bool {
	for _, known := range Variants {
		if v == known {
			return true
		}
	}
	return false
}

// ShapeSource selects where the displayed shape name comes from.
type ShapeSource string

const (
	// ShapeFromServer reads the shape field of the response payload.
	ShapeFromServer ShapeSource = "server"
	// ShapeFromClient picks a shape locally at random.
	ShapeFromClient ShapeSource = "client"
)

// Endpoint paths under the versioned API root.
const (
	PathHello  = "hello"
	PathShapes = "shapes"
)

// Fingerprint is a short identifier for secrets presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
