package devserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"shapes/internal/crypto"
)

type sessionRequest struct {
	SiteKey          string `json:"site_key"`
	RecaptchaSiteKey string `json:"recaptcha_site_key"`
}

type tokenRequest struct {
	Session        string `json:"session"`
	Domain         string `json:"domain"`
	RecaptchaToken string `json:"recaptcha_token"`
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var in sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if in.SiteKey == "" || in.SiteKey != s.cfg.ApproovSiteKey {
		writeError(w, http.StatusForbidden, "unknown site key")
		return
	}
	if s.cfg.RecaptchaSiteKey != "" && in.RecaptchaSiteKey != s.cfg.RecaptchaSiteKey {
		writeError(w, http.StatusForbidden, "recaptcha site key mismatch")
		return
	}

	id := uuid.NewString()
	now := s.cfg.Now()
	expires := now.Add(s.cfg.SessionTTL)
	s.mu.Lock()
	s.pruneLocked(now)
	s.sessions[id] = &session{expires: expires, verified: s.cfg.RecaptchaSiteKey == ""}
	s.mu.Unlock()

	s.log.Info("attestation session opened", zap.String("session", id))
	writeJSON(w, http.StatusOK, map[string]any{"session": id, "expires_at": expires})
}

// pruneLocked drops sessions expired at now. s.mu must be held.
func (s *Server) pruneLocked(now time.Time) {
	for id, sess := range s.sessions {
		if !now.Before(sess.expires) {
			delete(s.sessions, id)
		}
	}
}

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var in tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if in.Domain == "" {
		writeError(w, http.StatusBadRequest, "domain required")
		return
	}

	now := s.cfg.Now()
	s.mu.Lock()
	sess, ok := s.sessions[in.Session]
	if ok && !now.Before(sess.expires) {
		delete(s.sessions, in.Session)
		ok = false
	}
	if ok && !sess.verified && in.RecaptchaToken != "" {
		sess.verified = true
	}
	verified := ok && sess.verified
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusUnauthorized, "unknown or expired session")
		return
	}
	if !verified {
		writeError(w, http.StatusUnauthorized, "challenge required")
		return
	}

	tok, err := s.issue(in.Session, in.Domain, now)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": tok})
}

func (s *Server) issue(sessionID, aud string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   sessionID,
		Audience:  jwt.ClaimStrings{aud},
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		ID:        uuid.NewString(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	signed, err := tok.SignedString(crypto.SigningKey(s.signKey))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

var errMissingToken = errors.New("missing attestation token")

// verifyToken checks signature, issuer, audience and lifetime.
func (s *Server) verifyToken(raw string) error {
	if raw == "" {
		return errMissingToken
	}
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return crypto.VerifyingKey(s.pubKey), nil
	},
		jwt.WithValidMethods([]string{"EdDSA"}),
		jwt.WithIssuer(issuer),
		jwt.WithAudience(s.cfg.APIDomain),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.cfg.Now),
	)
	return err
}
