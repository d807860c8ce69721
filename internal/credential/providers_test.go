package credential_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapes/internal/credential"
	"shapes/internal/domain"
)

type fakeWidget struct {
	token string
	err   error
	calls int
	keys  []string
}

func (w *fakeWidget) Execute(ctx context.Context, siteKey, action string) (string, error) {
	w.calls++
	w.keys = append(w.keys, siteKey)
	return w.token, w.err
}

// fakeAttester answers FetchToken from a queue of results.
type fakeAttester struct {
	results   []error
	fetches   []domain.FetchOptions
	inits     []domain.SessionConfig
	initErr   error
	callOrder []string
}

func (a *fakeAttester) FetchToken(ctx context.Context, target string, opts domain.FetchOptions) (string, error) {
	a.callOrder = append(a.callOrder, "fetch")
	a.fetches = append(a.fetches, opts)
	var err error
	if len(a.results) > 0 {
		err, a.results = a.results[0], a.results[1:]
	}
	if err != nil {
		return "", err
	}
	return "token-for-" + target, nil
}

func (a *fakeAttester) InitializeSession(ctx context.Context, cfg domain.SessionConfig) error {
	a.callOrder = append(a.callOrder, "init")
	a.inits = append(a.inits, cfg)
	return a.initErr
}

func TestStatic_NeverFails(t *testing.T) {
	creds, err := credential.Static{Key: "k"}.Obtain(context.Background(), "shapes.test")
	require.NoError(t, err)
	assert.Equal(t, []domain.Credential{{Kind: domain.StaticKey, Value: "k"}}, creds)
}

func TestRecaptcha(t *testing.T) {
	w := &fakeWidget{token: "solved"}
	creds, err := credential.Recaptcha{Widget: w, SiteKey: "site"}.Obtain(context.Background(), "shapes.test")
	require.NoError(t, err)
	assert.Equal(t, []domain.Credential{{Kind: domain.RecaptchaToken, Value: "solved"}}, creds)
	assert.Equal(t, []string{"site"}, w.keys)
}

func TestRecaptcha_Rejected(t *testing.T) {
	w := &fakeWidget{err: errors.New("rejected")}
	_, err := credential.Recaptcha{Widget: w, SiteKey: "site"}.Obtain(context.Background(), "shapes.test")

	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, domain.ChallengeFailed, authErr.Reason)
}

func newAttestation(a *fakeAttester, w *fakeWidget) *credential.Attestation {
	return &credential.Attestation{
		Attester: a,
		Widget:   w,
		Session:  domain.SessionConfig{Host: "https://attester.test", SiteKey: "approov-site", RecaptchaSiteKey: "recaptcha-site"},
	}
}

func TestAttestation_DirectSuccessSkipsFallback(t *testing.T) {
	a := &fakeAttester{}
	w := &fakeWidget{token: "solved"}

	creds, err := newAttestation(a, w).Obtain(context.Background(), "shapes.test")

	require.NoError(t, err)
	assert.Equal(t, []domain.Credential{{Kind: domain.AttestationToken, Value: "token-for-shapes.test"}}, creds)
	assert.Equal(t, []string{"fetch"}, a.callOrder)
	assert.Zero(t, w.calls)
}

func TestAttestation_FallbackRunsOnce(t *testing.T) {
	a := &fakeAttester{results: []error{errors.New("no session")}}
	w := &fakeWidget{token: "solved"}

	creds, err := newAttestation(a, w).Obtain(context.Background(), "shapes.test")

	require.NoError(t, err)
	require.Len(t, creds, 1)
	assert.Equal(t, []string{"fetch", "init", "fetch"}, a.callOrder)
	assert.Equal(t, 1, w.calls)
	assert.Equal(t, []string{"recaptcha-site"}, w.keys)
	assert.Equal(t, "solved", a.fetches[1].RecaptchaToken)
	assert.Equal(t, "approov-site", a.inits[0].SiteKey)
}

func TestAttestation_RetryFailure(t *testing.T) {
	a := &fakeAttester{results: []error{errors.New("expired"), errors.New("service down")}}
	w := &fakeWidget{token: "solved"}

	_, err := newAttestation(a, w).Obtain(context.Background(), "shapes.test")

	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, domain.AttestationFailed, authErr.Reason)
	assert.Equal(t, []string{"fetch", "init", "fetch"}, a.callOrder)
}

func TestAttestation_SessionInitFailure(t *testing.T) {
	a := &fakeAttester{results: []error{errors.New("expired")}, initErr: errors.New("bad site key")}
	w := &fakeWidget{token: "solved"}

	_, err := newAttestation(a, w).Obtain(context.Background(), "shapes.test")

	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, domain.AttestationFailed, authErr.Reason)
	assert.Equal(t, []string{"fetch", "init"}, a.callOrder)
	assert.Zero(t, w.calls)
}

func TestApproovComposite_DegradesWithoutAttestation(t *testing.T) {
	a := &fakeAttester{results: []error{errors.New("expired"), errors.New("still failing")}}
	w := &fakeWidget{token: "solved"}
	p := credential.Chain{
		credential.Static{Key: "k"},
		credential.Optional{Provider: newAttestation(a, w)},
	}

	creds, err := p.Obtain(context.Background(), "shapes.test")

	require.NoError(t, err)
	assert.Equal(t, []domain.Credential{{Kind: domain.StaticKey, Value: "k"}}, creds)
}

func TestApproovComposite_WithAttestation(t *testing.T) {
	p := credential.Chain{
		credential.Static{Key: "k"},
		credential.Optional{Provider: newAttestation(&fakeAttester{}, &fakeWidget{})},
	}

	creds, err := p.Obtain(context.Background(), "shapes.test")

	require.NoError(t, err)
	assert.Equal(t, []domain.Credential{
		{Kind: domain.StaticKey, Value: "k"},
		{Kind: domain.AttestationToken, Value: "token-for-shapes.test"},
	}, creds)
}

func TestChain_StopsAtFirstError(t *testing.T) {
	p := credential.Chain{
		credential.Recaptcha{Widget: &fakeWidget{err: errors.New("nope")}, SiteKey: "s"},
		credential.Static{Key: "k"},
	}
	_, err := p.Obtain(context.Background(), "shapes.test")
	assert.Error(t, err)
}
