package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shapes/internal/app"
	"shapes/internal/domain"
	"shapes/internal/logging"
	"shapes/internal/store"
	"shapes/internal/telemetry"
)

var (
	home       string
	passphrase string
	appCtx     *app.App
	cfg        app.Config
	log        *zap.Logger

	variant      domain.Variant
	baseURL      string
	apiDomain    string
	otelEndpoint string
	verbose      bool
	logJSON      bool
	logFile      string

	shutdownTracing func(context.Context) error

	setupTracing = telemetry.Setup
)

const flushTimeout = 5 * time.Second

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// run executes args and flushes traces and logs whether or not the command
// failed; cobra skips post-run hooks after a RunE error.
func run(ctx context.Context, args []string) error {
	root := newRootCmd()
	root.SetArgs(args)
	defer flush()
	return root.ExecuteContext(ctx)
}

func flush() {
	if shutdownTracing != nil {
		ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil && log != nil {
			log.Warn("flush traces", zap.Error(err))
		}
		shutdownTracing = nil
	}
	if log != nil {
		_ = log.Sync()
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "shapes",
		Short:         "Authenticated client for the shapes API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := app.DefaultHome()
				if err != nil {
					return err
				}
				home = dir
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			var err error
			cfg, err = app.LoadConfig(home)
			if err != nil {
				return err
			}
			applyFlags(cmd, &cfg)

			opts := logging.Options{Verbose: verbose, JSON: logJSON, Path: logFile}
			if cmd.Name() == "ui" && opts.Path == "" {
				opts.Path = filepath.Join(home, "shapes.log")
			}
			log, err = logging.New(opts)
			if err != nil {
				return err
			}

			shutdownTracing, err = setupTracing(cmd.Context(), "shapes", cfg.OTelEndpoint)
			if err != nil {
				return fmt.Errorf("tracing: %w", err)
			}

			appCtx = app.New(home, log)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&home, "home", "", "config dir (default ~/.shapes)")
	pf.StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting saved secrets")
	pf.Var(variantValue{&variant}, "variant", "authentication variant: api-key, recaptcha or approov")
	pf.StringVar(&baseURL, "base-url", "", "API base URL (e.g. http://127.0.0.1:8080)")
	pf.StringVar(&apiDomain, "api-domain", "", "API domain credentials are bound to")
	pf.StringVar(&otelEndpoint, "otel-endpoint", "", "OTLP/HTTP trace endpoint URL")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.BoolVar(&logJSON, "log-json", false, "JSON log output")
	pf.StringVar(&logFile, "log-file", "", "log file (ui defaults to <home>/shapes.log)")

	root.AddCommand(helloCmd(), shapeCmd(), uiCmd(), profileCmd())
	return root
}

func applyFlags(cmd *cobra.Command, c *app.Config) {
	pf := cmd.Flags()
	if pf.Changed("variant") {
		c.Variant = variant
	}
	if pf.Changed("base-url") {
		c.BaseURL = baseURL
	}
	if pf.Changed("api-domain") {
		c.APIDomain = apiDomain
	}
	if pf.Changed("otel-endpoint") {
		c.OTelEndpoint = otelEndpoint
	}
}

// wire fills secrets from the profile and builds the dependency graph.
func wire() (*app.Wire, error) {
	c := cfg
	if passphrase != "" {
		s, err := appCtx.Profile.LoadSecrets(passphrase)
		switch {
		case errors.Is(err, store.ErrNoSecrets):
		case err != nil:
			return nil, err
		default:
			c.FillSecrets(s)
		}
	}
	return app.NewWire(c, log, nil)
}
