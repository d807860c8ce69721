package shapesapi

import (
	"context"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"

	"shapes/internal/domain"
)

// Client talks to one deployment of the shapes API.
type Client struct {
	Base    string // scheme and host, e.g. https://shapes.approov.io
	Version string // v1 or v2
	HTTP    *http.Client
	Log     *zap.Logger
}

// New returns a client; hc and log may be nil.
func New(base, version string, hc *http.Client, log *zap.Logger) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{Base: strings.TrimRight(base, "/"), Version: version, HTTP: hc, Log: log}
}

// BaseURL turns an API domain into the https base URL.
func BaseURL(apiDomain string) string { return "https://" + apiDomain }

// URL joins the base, the version segment and path.
func (c *Client) URL(path string) string {
	return c.Base + "/" + c.Version + "/" + strings.TrimLeft(path, "/")
}

// Build prepares a GET for path. Accept is always application/json and each
// non-empty credential sets exactly one header.
func (c *Client) Build(ctx context.Context, path string, creds ...domain.Credential) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(path), nil)
	if err != nil {
		return nil, err
	}
	// the default would be */*
	req.Header.Set("Accept", "application/json")
	for _, cred := range creds {
		if cred.Empty() {
			continue
		}
		req.Header.Set(cred.Kind.Header(), cred.Value)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return req, nil
}

// Fetch issues req and interprets the response.
func (c *Client) Fetch(req *http.Request) (domain.Payload, error) {
	c.Log.Debug("shapes api request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Strings("credential_headers", credentialHeaders(req.Header)),
	)
	resp, err := c.HTTP.Do(req)
	return c.Interpret(resp, err)
}

func credentialHeaders(h http.Header) []string {
	var out []string
	for _, name := range []string{domain.HeaderAPIKey, domain.HeaderRecaptchaToken, domain.HeaderApproovToken} {
		if h.Get(name) != "" {
			out = append(out, name)
		}
	}
	return out
}
