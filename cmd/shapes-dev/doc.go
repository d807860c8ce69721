// Package main runs the in-memory shapes API and attester used by the shapes
// CLI during development and tests.
//
// HTTP API
//
//	GET /{version}/hello
//	    {"text": "Hello, World!"}
//
//	GET /{version}/shapes
//	    {"shape": "<Circle|Rectangle|Square|Triangle>"}
//
//	POST /attester/session {"site_key", "recaptcha_site_key"}
//	    Open an attestation session: {"session", "expires_at"}.
//
//	POST /attester/token {"session", "domain", "recaptcha_token"}
//	    Issue an EdDSA-signed attestation token bound to domain: {"token"}.
//
// Authorization
//
//   - v1 accepts a matching Api-Key, or a Recaptcha-Token when no key is sent.
//   - v2 requires a matching Api-Key (401 otherwise) and a valid
//     Approov-Token. A bad token yields HTTP 200 with an embedded
//     {"status": 401} so clients exercise the payload status check.
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - A signing key is generated at start-up and its public half is logged.
//   - An access log records method, path, status, bytes, duration and a
//     request id for each request.
//   - The default listen address is 127.0.0.1:8080.
package main
