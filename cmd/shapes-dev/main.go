package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shapes/internal/crypto"
	"shapes/internal/devserver"
	"shapes/internal/logging"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		addr    string
		verbose bool
		logJSON bool
		cfg     devserver.Config
	)
	cmd := &cobra.Command{
		Use:          "shapes-dev",
		Short:        "In-memory shapes API and attester for development",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.APIKey == "" {
				cfg.APIKey = os.Getenv("SHAPES_API_KEY")
			}
			log, err := logging.New(logging.Options{Verbose: verbose, JSON: logJSON})
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			srv, err := devserver.New(cfg, log)
			if err != nil {
				return err
			}
			pub := srv.PublicKey()
			log.Info("attestation signing key", zap.String("ed25519_public", crypto.B64(pub[:])))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, addr, srv.Handler(), log)
		},
	}
	f := cmd.Flags()
	f.StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	f.StringVar(&cfg.APIKey, "api-key", "", "accepted Api-Key (default $SHAPES_API_KEY)")
	f.StringVar(&cfg.APIDomain, "api-domain", "", "audience of issued attestation tokens (default shapes.approov.io)")
	f.StringVar(&cfg.ApproovSiteKey, "approov-site-key", "", "site key required by /attester/session")
	f.StringVar(&cfg.RecaptchaSiteKey, "recaptcha-site-key", "", "require a reCAPTCHA token before the first attestation")
	f.DurationVar(&cfg.SessionTTL, "session-ttl", 30*time.Minute, "attester session lifetime")
	f.DurationVar(&cfg.TokenTTL, "token-ttl", 5*time.Minute, "attestation token lifetime")
	f.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	f.BoolVar(&logJSON, "log-json", false, "JSON log output")
	return cmd
}

func serve(ctx context.Context, addr string, h http.Handler, log *zap.Logger) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()
	log.Info("shapes-dev listening", zap.String("addr", addr))

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
