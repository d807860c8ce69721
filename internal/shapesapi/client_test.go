package shapesapi_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapes/internal/domain"
	"shapes/internal/shapesapi"
)

func TestBuild_AcceptAlwaysJSON(t *testing.T) {
	c := shapesapi.New(shapesapi.BaseURL("shapes.example"), "v1", nil, nil)

	cases := map[string][]domain.Credential{
		"api-key":   {{Kind: domain.StaticKey, Value: "k"}},
		"recaptcha": {{Kind: domain.RecaptchaToken, Value: "r"}},
		"approov":   {{Kind: domain.StaticKey, Value: "k"}, {Kind: domain.AttestationToken, Value: "a"}},
		"degraded":  {{Kind: domain.StaticKey, Value: "k"}},
		"none":      nil,
	}
	for name, creds := range cases {
		t.Run(name, func(t *testing.T) {
			req, err := c.Build(context.Background(), domain.PathHello, creds...)
			require.NoError(t, err)
			assert.Equal(t, "application/json", req.Header.Get("Accept"))
			assert.Equal(t, http.MethodGet, req.Method)
		})
	}
}

func TestBuild_OneHeaderPerCredential(t *testing.T) {
	c := shapesapi.New("https://shapes.example/", "v2", nil, nil)

	req, err := c.Build(context.Background(), domain.PathShapes,
		domain.Credential{Kind: domain.StaticKey, Value: "key"},
		domain.Credential{Kind: domain.AttestationToken, Value: "jwt"},
		domain.Credential{Kind: domain.RecaptchaToken},
	)
	require.NoError(t, err)

	want := http.Header{
		"Accept":        {"application/json"},
		"Api-Key":       {"key"},
		"Approov-Token": {"jwt"},
	}
	if diff := cmp.Diff(want, req.Header); diff != "" {
		t.Fatalf("headers mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "https://shapes.example/v2/shapes", req.URL.String())
}

func TestInterpret_HTTPErrorSkipsDecoding(t *testing.T) {
	c := shapesapi.New("https://shapes.example", "v1", nil, nil)
	resp := &http.Response{
		StatusCode: http.StatusServiceUnavailable,
		Status:     "503 Service Unavailable",
		Body:       io.NopCloser(strings.NewReader("<html>not json")),
	}

	_, err := c.Interpret(resp, nil)

	var httpErr *domain.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 503, httpErr.Status)
	assert.Equal(t, "Service Unavailable", httpErr.StatusText)
	assert.Equal(t, "503 Service Unavailable", err.Error())
}

func TestInterpret_EmbeddedStatus(t *testing.T) {
	c := shapesapi.New("https://shapes.example", "v1", nil, nil)

	cases := []struct {
		body string
		want int
	}{
		{`{"status":400,"message":"bad"}`, 400},
		{`{"status":"401"}`, 401},
		{`{"status":400.0,"shape":"Square"}`, 400},
		{`{"status":4e2,"shape":"Square"}`, 400},
		{`{"status":400.5}`, 400},
		{`{"status":" 503 "}`, 503},
		{`{"status":"4.01e2"}`, 401},
	}
	for _, tc := range cases {
		resp := &http.Response{StatusCode: 200, Status: "200 OK", Body: io.NopCloser(strings.NewReader(tc.body))}
		_, err := c.Interpret(resp, nil)

		var appErr *domain.ApplicationError
		require.ErrorAs(t, err, &appErr, tc.body)
		assert.Equal(t, tc.want, appErr.EmbeddedStatus, tc.body)
	}
}

func TestInterpret_EmbeddedStatusBelowError(t *testing.T) {
	c := shapesapi.New("https://shapes.example", "v1", nil, nil)

	for _, body := range []string{`{"status":399.5}`, `{"status":200.0}`, `{"status":true}`, `{"status":null}`, `{"status":"n/a"}`} {
		resp := &http.Response{StatusCode: 200, Status: "200 OK", Body: io.NopCloser(strings.NewReader(body))}
		_, err := c.Interpret(resp, nil)
		assert.NoError(t, err, body)
	}
}

func TestInterpret_NonStringFieldsAreIgnored(t *testing.T) {
	c := shapesapi.New("https://shapes.example", "v1", nil, nil)

	resp := &http.Response{StatusCode: 200, Status: "200 OK", Body: io.NopCloser(strings.NewReader(`{"text":5,"shape":["Square"]}`))}
	p, err := c.Interpret(resp, nil)
	require.NoError(t, err)
	assert.Empty(t, p.Text)
	assert.Empty(t, p.Shape)
	assert.Contains(t, p.Raw, "text")
}

func TestInterpret_Success(t *testing.T) {
	c := shapesapi.New("https://shapes.example", "v1", nil, nil)
	resp := &http.Response{
		StatusCode: 200,
		Status:     "200 OK",
		Body:       io.NopCloser(strings.NewReader(`{"shape":"Square","status":"ok"}`)),
	}

	p, err := c.Interpret(resp, nil)
	require.NoError(t, err)
	assert.Equal(t, "Square", p.Shape)
	assert.Zero(t, p.Status)
	assert.Contains(t, p.Raw, "shape")
}

func TestInterpret_TransportErrors(t *testing.T) {
	c := shapesapi.New("https://shapes.example", "v1", nil, nil)

	_, err := c.Interpret(nil, errors.New("dial tcp: connection refused"))
	var tErr *domain.TransportError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, "dial tcp: connection refused", tErr.Message)

	resp := &http.Response{StatusCode: 200, Status: "200 OK", Body: io.NopCloser(strings.NewReader(`{"shape":`))}
	_, err = c.Interpret(resp, nil)
	require.ErrorAs(t, err, &tErr)

	resp = &http.Response{StatusCode: 200, Status: "200 OK", Body: io.NopCloser(strings.NewReader(`["circle"]`))}
	_, err = c.Interpret(resp, nil)
	require.ErrorAs(t, err, &tErr)
}

func TestFetch_RoundTrip(t *testing.T) {
	var gotHeader http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Clone()
		assert.Equal(t, "/v1/hello", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"text":"Hello, World!"}`)
	}))
	defer srv.Close()

	c := shapesapi.New(srv.URL, "v1", srv.Client(), nil)
	req, err := c.Build(context.Background(), domain.PathHello, domain.Credential{Kind: domain.StaticKey, Value: "secret"})
	require.NoError(t, err)

	p, err := c.Fetch(req)
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!", p.Text)
	assert.Equal(t, "secret", gotHeader.Get("Api-Key"))
	assert.Equal(t, "application/json", gotHeader.Get("Accept"))
}
