package credential

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"shapes/internal/domain"
)

// DefaultAction is the reCAPTCHA v3 action name.
const DefaultAction = "submit"

// Static returns Key as a StaticKey credential.
type Static struct {
	Key string
}

func (s Static) Obtain(ctx context.Context, target string) ([]domain.Credential, error) {
	return []domain.Credential{{Kind: domain.StaticKey, Value: s.Key}}, nil
}

// Recaptcha obtains a challenge token from Widget.
type Recaptcha struct {
	Widget  domain.ChallengeWidget
	SiteKey string
	Action  string
}

func (r Recaptcha) Obtain(ctx context.Context, target string) ([]domain.Credential, error) {
	action := r.Action
	if action == "" {
		action = DefaultAction
	}
	tok, err := r.Widget.Execute(ctx, r.SiteKey, action)
	if err != nil {
		return nil, &domain.AuthError{Reason: domain.ChallengeFailed, Err: err}
	}
	if tok == "" {
		return nil, &domain.AuthError{Reason: domain.ChallengeFailed, Err: errors.New("empty challenge token")}
	}
	return []domain.Credential{{Kind: domain.RecaptchaToken, Value: tok}}, nil
}

// Attestation obtains tokens from Attester, re-attesting through a new
// session and a challenge when direct issuance fails.
type Attestation struct {
	Attester domain.Attester
	Widget   domain.ChallengeWidget
	Session  domain.SessionConfig
	Log      *zap.Logger
}

func (a *Attestation) Obtain(ctx context.Context, target string) ([]domain.Credential, error) {
	cred, err := a.token(target)(ctx)
	if err != nil {
		return nil, &domain.AuthError{Reason: domain.AttestationFailed, Err: err}
	}
	return []domain.Credential{cred}, nil
}

func (a *Attestation) token(target string) step {
	return fallback(a.direct(target), a.reattest(target))
}

func (a *Attestation) direct(target string) step {
	return func(ctx context.Context) (domain.Credential, error) {
		tok, err := a.Attester.FetchToken(ctx, target, domain.FetchOptions{})
		if err != nil {
			a.log().Debug("direct attestation failed", zap.String("target", target), zap.Error(err))
			return domain.Credential{}, err
		}
		return domain.Credential{Kind: domain.AttestationToken, Value: tok}, nil
	}
}

func (a *Attestation) reattest(target string) step {
	return func(ctx context.Context) (domain.Credential, error) {
		if err := a.Attester.InitializeSession(ctx, a.Session); err != nil {
			return domain.Credential{}, err
		}
		solution, err := a.Widget.Execute(ctx, a.Session.RecaptchaSiteKey, DefaultAction)
		if err != nil {
			return domain.Credential{}, &domain.AuthError{Reason: domain.ChallengeFailed, Err: err}
		}
		tok, err := a.Attester.FetchToken(ctx, target, domain.FetchOptions{RecaptchaToken: solution})
		if err != nil {
			return domain.Credential{}, err
		}
		a.log().Debug("re-attested", zap.String("target", target))
		return domain.Credential{Kind: domain.AttestationToken, Value: tok}, nil
	}
}

func (a *Attestation) log() *zap.Logger {
	if a.Log == nil {
		return zap.NewNop()
	}
	return a.Log
}

// Chain concatenates the credentials of every provider, stopping at the
// first error.
type Chain []domain.CredentialProvider

func (c Chain) Obtain(ctx context.Context, target string) ([]domain.Credential, error) {
	var out []domain.Credential
	for _, p := range c {
		creds, err := p.Obtain(ctx, target)
		if err != nil {
			return nil, err
		}
		out = append(out, creds...)
	}
	return out, nil
}

// Optional swallows AuthErrors of Provider: the failure is logged and no
// credential is returned. Other errors propagate.
type Optional struct {
	Provider domain.CredentialProvider
	Log      *zap.Logger
}

func (o Optional) Obtain(ctx context.Context, target string) ([]domain.Credential, error) {
	creds, err := o.Provider.Obtain(ctx, target)
	var authErr *domain.AuthError
	if errors.As(err, &authErr) {
		if o.Log != nil {
			o.Log.Warn("continuing without optional credential", zap.String("target", target), zap.Error(err))
		}
		return nil, nil
	}
	return creds, err
}

var (
	_ domain.CredentialProvider = Static{}
	_ domain.CredentialProvider = Recaptcha{}
	_ domain.CredentialProvider = (*Attestation)(nil)
	_ domain.CredentialProvider = Chain(nil)
	_ domain.CredentialProvider = Optional{}
)
