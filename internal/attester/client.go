package attester

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"shapes/internal/domain"
)

var errNoSession = errors.New("no active session")

// Client is safe for concurrent use.
type Client struct {
	HTTP *http.Client
	Log  *zap.Logger
	Now  func() time.Time

	mu      sync.Mutex
	host    string
	session string
	expires time.Time
}

// New returns a client without a session; hc and log may be nil.
func New(hc *http.Client, log *zap.Logger) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{HTTP: hc, Log: log, Now: time.Now}
}

var _ domain.Attester = (*Client)(nil)

type sessionRequest struct {
	SiteKey          string `json:"site_key"`
	RecaptchaSiteKey string `json:"recaptcha_site_key,omitempty"`
}

type sessionResponse struct {
	Session   string    `json:"session"`
	ExpiresAt time.Time `json:"expires_at"`
}

type tokenRequest struct {
	Session        string `json:"session"`
	Domain         string `json:"domain"`
	RecaptchaToken string `json:"recaptcha_token,omitempty"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// InitializeSession replaces any current session with a new one.
func (c *Client) InitializeSession(ctx context.Context, cfg domain.SessionConfig) error {
	host := strings.TrimRight(cfg.Host, "/")
	if host == "" || cfg.SiteKey == "" {
		return &Error{Kind: KindGeneric, Op: "session", Err: errors.New("host and site key required")}
	}
	var out sessionResponse
	if err := c.post(ctx, "session", host+"/session", sessionRequest{
		SiteKey:          cfg.SiteKey,
		RecaptchaSiteKey: cfg.RecaptchaSiteKey,
	}, &out); err != nil {
		return err
	}
	if out.Session == "" {
		return &Error{Kind: KindGeneric, Op: "session", Err: errors.New("empty session id")}
	}

	c.mu.Lock()
	c.host, c.session, c.expires = host, out.Session, out.ExpiresAt
	c.mu.Unlock()
	c.Log.Debug("attestation session initialised", zap.String("host", host), zap.Time("expires_at", out.ExpiresAt))
	return nil
}

// FetchToken returns a token bound to apiDomain. Without a live session it
// fails with KindSession before any network call.
func (c *Client) FetchToken(ctx context.Context, apiDomain string, opts domain.FetchOptions) (string, error) {
	c.mu.Lock()
	host, session, expires := c.host, c.session, c.expires
	c.mu.Unlock()

	if session == "" {
		return "", &Error{Kind: KindSession, Op: "token", Err: errNoSession}
	}
	if !expires.IsZero() && !c.Now().Before(expires) {
		c.dropSession(session)
		return "", &Error{Kind: KindSession, Op: "token", Err: errors.New("session expired")}
	}

	var out tokenResponse
	err := c.post(ctx, "token", host+"/token", tokenRequest{
		Session:        session,
		Domain:         apiDomain,
		RecaptchaToken: opts.RecaptchaToken,
	}, &out)
	if err != nil {
		var aErr *Error
		if errors.As(err, &aErr) && aErr.Kind == KindSession {
			c.dropSession(session)
		}
		return "", err
	}
	if out.Token == "" {
		return "", &Error{Kind: KindGeneric, Op: "token", Err: errors.New("empty token")}
	}
	return out.Token, nil
}

func (c *Client) dropSession(session string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == session {
		c.session, c.expires = "", time.Time{}
	}
}

func (c *Client) post(ctx context.Context, op, url string, in, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return &Error{Kind: KindGeneric, Op: op, Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, buf)
	if err != nil {
		return &Error{Kind: KindGeneric, Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &Error{Kind: KindFetch, Op: op, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode/100 == 2:
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return &Error{Kind: KindSession, Op: op, Err: statusErr(resp)}
	default:
		return &Error{Kind: KindService, Op: op, Err: statusErr(resp)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: KindGeneric, Op: op, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}

func statusErr(resp *http.Response) error {
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	if s := strings.TrimSpace(string(msg)); s != "" {
		return fmt.Errorf("%s: %s", resp.Status, s)
	}
	return errors.New(resp.Status)
}
