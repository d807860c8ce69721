// Package devserver implements an in-memory shapes API and attester for
// development and tests.
//
// HTTP API
//
//	GET /v1/hello, GET /v1/shapes
//	    Require a valid Api-Key or a non-empty Recaptcha-Token.
//
//	GET /v2/hello, GET /v2/shapes
//	    Require a valid Api-Key and an Approov-Token signed by this server's
//	    attester. A missing or invalid attestation token is reported with
//	    HTTP 200 and an embedded {"status": 401} body, the way the upstream
//	    API signals application-level errors.
//
//	POST /attester/session {"site_key", "recaptcha_site_key"}
//	    Open an attestation session.
//
//	POST /attester/token {"session", "domain", "recaptcha_token"}
//	    Issue an EdDSA JWT for domain. The first token of a session requires
//	    a challenge solution when a reCAPTCHA site key is configured.
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - Responses are JSON. Non-2xx statuses carry {"status", "error"}.
//   - An access log records request id, method, path, remote, status, bytes
//     and duration for each request.
package devserver
