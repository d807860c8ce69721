package devserver

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"shapes/internal/crypto"
	"shapes/internal/domain"
)

const issuer = "shapes-dev-attester"

// Shapes served by /shapes, capitalised like the upstream API.
var Shapes = []string{"Circle", "Rectangle", "Square", "Triangle"}

// Config configures a Server.
type Config struct {
	APIKey           string
	APIDomain        string // audience of issued attestation tokens
	ApproovSiteKey   string
	RecaptchaSiteKey string
	SessionTTL       time.Duration
	TokenTTL         time.Duration
	Now              func() time.Time
}

type session struct {
	expires  time.Time
	verified bool
}

// Server is safe for concurrent use.
type Server struct {
	cfg Config
	log *zap.Logger

	signKey domain.Ed25519Private
	pubKey  domain.Ed25519Public

	mu       sync.Mutex
	sessions map[string]*session
}

// New returns a server with a fresh attestation signing key.
func New(cfg Config, log *zap.Logger) (*Server, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("devserver: api key required")
	}
	if cfg.APIDomain == "" {
		cfg.APIDomain = "shapes.approov.io"
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 30 * time.Minute
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 5 * time.Minute
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	priv, pub, err := crypto.GenerateEd25519()
	if err != nil {
		return nil, fmt.Errorf("devserver: signing key: %w", err)
	}
	return &Server{
		cfg:      cfg,
		log:      log,
		signKey:  priv,
		pubKey:   pub,
		sessions: make(map[string]*session),
	}, nil
}

// PublicKey returns the key attestation tokens are signed with.
func (s *Server) PublicKey() domain.Ed25519Public { return s.pubKey }

// Handler returns the routed handler wrapped in the access log.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{version}/hello", s.handleHello)
	mux.HandleFunc("GET /{version}/shapes", s.handleShapes)
	mux.HandleFunc("POST /attester/session", s.handleSession)
	mux.HandleFunc("POST /attester/token", s.handleToken)
	return accessLog(s.log, mux)
}

func (s *Server) handleHello(w http.ResponseWriter, r *http.Request) {
	if !s.authorize(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": "Hello, World!"})
}

func (s *Server) handleShapes(w http.ResponseWriter, r *http.Request) {
	if !s.authorize(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"shape": Shapes[rand.IntN(len(Shapes))]})
}

// authorize writes the rejection itself and reports whether to continue.
func (s *Server) authorize(w http.ResponseWriter, r *http.Request) bool {
	switch r.PathValue("version") {
	case "v1":
		if r.Header.Get(domain.HeaderAPIKey) == s.cfg.APIKey {
			return true
		}
		if r.Header.Get(domain.HeaderAPIKey) == "" && r.Header.Get(domain.HeaderRecaptchaToken) != "" {
			return true
		}
		writeError(w, http.StatusUnauthorized, "invalid api key")
		return false
	case "v2":
		if r.Header.Get(domain.HeaderAPIKey) != s.cfg.APIKey {
			writeError(w, http.StatusUnauthorized, "invalid api key")
			return false
		}
		if err := s.verifyToken(r.Header.Get(domain.HeaderApproovToken)); err != nil {
			s.log.Debug("rejected attestation token", zap.Error(err))
			writeJSON(w, http.StatusOK, errorBody{Status: http.StatusUnauthorized, Error: "invalid approov token"})
			return false
		}
		return true
	default:
		writeError(w, http.StatusNotFound, "unknown api version")
		return false
	}
}

type errorBody struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Status: status, Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
