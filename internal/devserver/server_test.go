package devserver_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapes/internal/devserver"
)

func newServer(t *testing.T, now func() time.Time) *httptest.Server {
	t.Helper()
	s, err := devserver.New(devserver.Config{
		APIKey:           "key",
		APIDomain:        "shapes.test",
		ApproovSiteKey:   "approov-site",
		RecaptchaSiteKey: "recaptcha-site",
		Now:              now,
	}, nil)
	require.NoError(t, err)
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string, header map[string]string) (int, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func post(t *testing.T, url string, in any) (int, map[string]any) {
	t.Helper()
	b, err := json.Marshal(in)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestV1_APIKey(t *testing.T) {
	srv := newServer(t, nil)

	code, body := get(t, srv.URL+"/v1/hello", map[string]string{"Api-Key": "key"})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Hello, World!", body["text"])

	code, body = get(t, srv.URL+"/v1/shapes", map[string]string{"Api-Key": "key"})
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, devserver.Shapes, body["shape"])

	code, _ = get(t, srv.URL+"/v1/hello", map[string]string{"Api-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestV1_RecaptchaToken(t *testing.T) {
	srv := newServer(t, nil)

	code, _ := get(t, srv.URL+"/v1/shapes", map[string]string{"Recaptcha-Token": "solved"})
	assert.Equal(t, http.StatusOK, code)

	code, _ = get(t, srv.URL+"/v1/shapes", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestV2_MissingAttestationIsEmbeddedError(t *testing.T) {
	srv := newServer(t, nil)

	code, body := get(t, srv.URL+"/v2/shapes", map[string]string{"Api-Key": "key"})
	assert.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 401, body["status"])

	code, body = get(t, srv.URL+"/v2/shapes", map[string]string{"Api-Key": "key", "Approov-Token": "garbage"})
	assert.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 401, body["status"])
}

func TestAttesterFlow(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	clock := func() time.Time { return now }
	srv := newServer(t, clock)

	code, _ := post(t, srv.URL+"/attester/session", map[string]string{"site_key": "nope"})
	require.Equal(t, http.StatusForbidden, code)

	code, body := post(t, srv.URL+"/attester/session", map[string]string{
		"site_key":           "approov-site",
		"recaptcha_site_key": "recaptcha-site",
	})
	require.Equal(t, http.StatusOK, code)
	session, _ := body["session"].(string)
	require.NotEmpty(t, session)

	code, _ = post(t, srv.URL+"/attester/token", map[string]string{"session": session, "domain": "shapes.test"})
	require.Equal(t, http.StatusUnauthorized, code, "first token needs a challenge solution")

	code, body = post(t, srv.URL+"/attester/token", map[string]string{
		"session":         session,
		"domain":          "shapes.test",
		"recaptcha_token": "solved",
	})
	require.Equal(t, http.StatusOK, code)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	code, body = get(t, srv.URL+"/v2/shapes", map[string]string{"Api-Key": "key", "Approov-Token": token})
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, devserver.Shapes, body["shape"])

	code, _ = post(t, srv.URL+"/attester/token", map[string]string{"session": session, "domain": "shapes.test"})
	assert.Equal(t, http.StatusOK, code, "verified session issues without a new challenge")

	now = now.Add(time.Hour)
	code, body = get(t, srv.URL+"/v2/hello", map[string]string{"Api-Key": "key", "Approov-Token": token})
	assert.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 401, body["status"], "expired token")

	code, _ = post(t, srv.URL+"/attester/token", map[string]string{"session": session, "domain": "shapes.test"})
	assert.Equal(t, http.StatusUnauthorized, code, "expired session")
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := devserver.New(devserver.Config{}, nil)
	assert.Error(t, err)
}
