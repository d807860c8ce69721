// Package crypto exposes the minimal primitives used by shapes.
//
// Contents
//
//   - Ed25519 key generation and stdlib key views (GenerateEd25519,
//     SigningKey, VerifyingKey), used by the dev attester to sign
//     attestation tokens
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//   - Short fingerprints of secrets for display/logging (Fingerprint)
//   - Base64 helpers for printing public keys (B64)
//
// # Notes
//
// Key material is returned as the fixed-size array types defined in
// internal/domain. Callers should treat secrets as sensitive and rely on Wipe
// when practical to reduce lifetime in memory.
package crypto
