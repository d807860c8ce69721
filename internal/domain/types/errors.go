package types

import (
	"fmt"
	"strconv"
)

// AuthReason classifies a credential acquisition failure.
type AuthReason int

const (
	// ChallengeFailed means the challenge widget rejected or errored.
	ChallengeFailed AuthReason = iota + 1
	// AttestationFailed means both direct and fallback token issuance failed.
	AttestationFailed
)

func (r AuthReason) String() string {
	switch r {
	case ChallengeFailed:
		return "challenge failed"
	case AttestationFailed:
		return "attestation failed"
	default:
		return "auth failed"
	}
}

// AuthError is returned by credential providers.
type AuthError struct {
	Reason AuthReason
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err == nil {
		return e.Reason.String()
	}
	return e.Reason.String() + ": " + e.Err.Error()
}

func (e *AuthError) Unwrap() error { return e.Err }

// HTTPError is a non-2xx transport status. The body is never decoded.
type HTTPError struct {
	Status     int
	StatusText string
}

// Error mirrors the "<status> <text>" form shown to users.
func (e *HTTPError) Error() string {
	if e.StatusText == "" {
		return strconv.Itoa(e.Status)
	}
	return strconv.Itoa(e.Status) + " " + e.StatusText
}

// TransportError covers network failures and undecodable bodies.
type TransportError struct {
	Message string
	Err     error
}

func (e *TransportError) Error() string { return e.Message }

func (e *TransportError) Unwrap() error { return e.Err }

// ApplicationError is an embedded status >= 400 inside a 2xx body.
type ApplicationError struct {
	EmbeddedStatus int
}

func (e *ApplicationError) Error() string {
	return fmt.Sprintf("application error: status %d", e.EmbeddedStatus)
}
