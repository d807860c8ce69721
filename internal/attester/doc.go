// Package attester is an HTTP client for the attestation service that issues
// short-lived tokens proving the client environment.
//
// A token can only be issued inside a session. InitializeSession opens one
// for a site key (and the reCAPTCHA site key the service will verify);
// FetchToken asks for a token bound to an API domain, optionally carrying a
// challenge solution. The session lives in memory only.
//
// Wire protocol (JSON over HTTP):
//
//	POST {host}/session {"site_key", "recaptcha_site_key"} -> {"session", "expires_at"}
//	POST {host}/token   {"session", "domain", "recaptcha_token"} -> {"token"}
//
// Failures are reported as *Error with a Kind: service (5xx or unexpected
// status), session (missing, expired or rejected session), fetch (transport)
// or generic (anything else, e.g. an undecodable body).
package attester
