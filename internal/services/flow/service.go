package flow

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"shapes/internal/domain"
	"shapes/internal/ui"
)

const tracerName = "shapes/internal/services/flow"

// API builds and sends shapes API requests.
type API interface {
	Build(ctx context.Context, path string, creds ...domain.Credential) (*http.Request, error)
	Fetch(req *http.Request) (domain.Payload, error)
}

// Options configure a Service. Credentials, API and UI are required.
type Options struct {
	Credentials domain.CredentialProvider
	API         API
	UI          *ui.Store
	Target      string             // API domain credentials are bound to
	ShapeSource domain.ShapeSource // defaults to ShapeFromServer
	Pick        func() string      // client shape picker, defaults to RandomShape
	Log         *zap.Logger
	Tracer      trace.Tracer
}

// Service is safe for concurrent use.
type Service struct {
	creds  domain.CredentialProvider
	api    API
	ui     *ui.Store
	target string
	source domain.ShapeSource
	pick   func() string
	log    *zap.Logger
	tracer trace.Tracer

	inflight singleflight.Group
}

// New returns a Service from opts.
func New(opts Options) *Service {
	s := &Service{
		creds:  opts.Credentials,
		api:    opts.API,
		ui:     opts.UI,
		target: opts.Target,
		source: opts.ShapeSource,
		pick:   opts.Pick,
		log:    opts.Log,
		tracer: opts.Tracer,
	}
	if s.source == "" {
		s.source = domain.ShapeFromServer
	}
	if s.pick == nil {
		s.pick = RandomShape
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}
	return s
}

var _ domain.FlowService = (*Service)(nil)

// Hello runs the greeting flow.
func (s *Service) Hello(ctx context.Context) error {
	_, err, shared := s.inflight.Do(domain.PathHello, func() (any, error) {
		return nil, s.run(ctx, domain.PathHello, func(domain.Payload) (ui.State, error) {
			return ui.HelloState(), nil
		})
	})
	if shared {
		s.log.Debug("joined in-flight attempt", zap.String("flow", domain.PathHello))
	}
	return err
}

// Shape runs the shape flow and returns the displayed shape name.
func (s *Service) Shape(ctx context.Context) (string, error) {
	v, err, shared := s.inflight.Do(domain.PathShapes, func() (any, error) {
		var name string
		err := s.run(ctx, domain.PathShapes, func(p domain.Payload) (ui.State, error) {
			n, err := s.shapeName(p)
			if err != nil {
				return ui.State{}, err
			}
			name = n
			return ui.ShapeState(n), nil
		})
		return name, err
	})
	if shared {
		s.log.Debug("joined in-flight attempt", zap.String("flow", domain.PathShapes))
	}
	name, _ := v.(string)
	return name, err
}

func (s *Service) shapeName(p domain.Payload) (string, error) {
	if s.source == domain.ShapeFromClient {
		return s.pick(), nil
	}
	name := normalizeShape(p.Shape)
	if name == "" {
		return "", ErrNoShape
	}
	return name, nil
}

// run performs one attempt. The UI enters Loading once at the start and
// leaves it once at the end, whatever the outcome.
func (s *Service) run(ctx context.Context, path string, onSuccess func(domain.Payload) (ui.State, error)) error {
	ctx, span := s.tracer.Start(ctx, "flow."+path, trace.WithAttributes(
		attribute.String("shapes.path", path),
		attribute.String("shapes.target", s.target),
	))
	defer span.End()

	s.ui.Set(ui.LoadingState())

	next, err := s.attempt(ctx, path, onSuccess)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.log.Warn("fetch failed", zap.String("path", path), zap.Error(err))
		s.ui.Set(ui.ConfusedState(err))
		return err
	}
	s.log.Debug("fetch succeeded", zap.String("path", path), zap.Stringer("state", next.Kind))
	s.ui.Set(next)
	return nil
}

func (s *Service) attempt(ctx context.Context, path string, onSuccess func(domain.Payload) (ui.State, error)) (ui.State, error) {
	creds, err := s.creds.Obtain(ctx, s.target)
	if err != nil {
		return ui.State{}, err
	}
	req, err := s.api.Build(ctx, path, creds...)
	if err != nil {
		return ui.State{}, &domain.TransportError{Message: err.Error(), Err: err}
	}
	payload, err := s.api.Fetch(req)
	if err != nil {
		return ui.State{}, err
	}
	return onSuccess(payload)
}
