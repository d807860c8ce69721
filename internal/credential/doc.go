// Package credential implements the credential providers of each deployment
// variant.
//
//   - Static returns the configured API key; it never fails.
//   - Recaptcha solves a challenge and fails with AuthError(ChallengeFailed).
//   - Attestation asks the attester directly and, on any failure, opens a new
//     session, solves a challenge and asks once more. A second failure is
//     AuthError(AttestationFailed).
//
// Providers compose: Chain concatenates credentials and Optional turns an
// AuthError into "no credential" so the request still goes out without the
// optional header.
package credential
