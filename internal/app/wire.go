package app

import (
	"net/http"

	"go.uber.org/zap"

	"shapes/internal/attester"
	"shapes/internal/challenge"
	"shapes/internal/credential"
	"shapes/internal/domain"
	flowsvc "shapes/internal/services/flow"
	"shapes/internal/shapesapi"
	"shapes/internal/ui"
)

// Wire bundles the UI store, clients and flow service for one deployment.
type Wire struct {
	Config      Config
	UI          *ui.Store
	API         *shapesapi.Client
	Credentials domain.CredentialProvider
	Flows       domain.FlowService
	HTTP        *http.Client
}

// NewWire constructs the dependency graph from cfg. hc may be nil.
func NewWire(cfg Config, log *zap.Logger, hc *http.Client) (*Wire, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	httpClient := hc
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	store := ui.NewStore()
	api := shapesapi.New(cfg.Base(), cfg.APIVersion, httpClient, log.Named("api"))
	creds := NewCredentials(cfg, log.Named("credential"), httpClient)
	flows := flowsvc.New(flowsvc.Options{
		Credentials: creds,
		API:         api,
		UI:          store,
		Target:      cfg.APIDomain,
		ShapeSource: cfg.ShapeSource,
		Log:         log.Named("flow").With(zap.Stringer("variant", cfg.Variant)),
	})

	return &Wire{
		Config:      cfg,
		UI:          store,
		API:         api,
		Credentials: creds,
		Flows:       flows,
		HTTP:        httpClient,
	}, nil
}

// NewCredentials returns the provider for cfg.Variant:
//
//	api-key    Api-Key
//	recaptcha  Recaptcha-Token
//	approov    Api-Key plus Approov-Token when attestation succeeds
func NewCredentials(cfg Config, log *zap.Logger, hc *http.Client) domain.CredentialProvider {
	switch cfg.Variant {
	case domain.VariantRecaptcha:
		return credential.Recaptcha{Widget: newWidget(cfg, log), SiteKey: cfg.RecaptchaSiteKey}
	case domain.VariantApproov:
		return credential.Chain{
			credential.Static{Key: cfg.APIKey},
			credential.Optional{
				Provider: &credential.Attestation{
					Attester: attester.New(hc, log.Named("attester")),
					Widget:   newWidget(cfg, log),
					Session: domain.SessionConfig{
						Host:             cfg.AttesterHost,
						SiteKey:          cfg.ApproovSiteKey,
						RecaptchaSiteKey: cfg.RecaptchaSiteKey,
					},
					Log: log,
				},
				Log: log,
			},
		}
	default:
		return credential.Static{Key: cfg.APIKey}
	}
}

func newWidget(cfg Config, log *zap.Logger) domain.ChallengeWidget {
	if cfg.Challenge.Token != "" {
		return challenge.Static{Token: cfg.Challenge.Token}
	}
	return &challenge.Browser{
		PageURL:    cfg.Challenge.PageURL,
		ControlURL: cfg.Challenge.ControlURL,
		Headless:   !cfg.Challenge.Headful,
		Log:        log.Named("challenge"),
	}
}
