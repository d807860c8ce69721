package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"shapes/internal/domain"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the encrypted API key and site keys",
	}
	cmd.AddCommand(profileSaveCmd(), profileShowCmd())
	return cmd
}

func profileSaveCmd() *cobra.Command {
	var s domain.Secrets
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Encrypt and store secrets; omitted ones keep their saved value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			fps, err := appCtx.Profile.SaveSecrets(passphrase, s)
			if err != nil {
				return err
			}
			fmt.Println("Secrets saved.")
			printFingerprints(fps)
			return nil
		},
	}
	cmd.Flags().StringVar(&s.APIKey, "api-key", "", "shapes API key")
	cmd.Flags().StringVar(&s.RecaptchaSiteKey, "recaptcha-site-key", "", "reCAPTCHA v3 site key")
	cmd.Flags().StringVar(&s.ApproovSiteKey, "approov-site-key", "", "attestation site key")
	return cmd
}

func profileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print fingerprints of the saved secrets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			fps, err := appCtx.Profile.FingerprintSecrets(passphrase)
			if err != nil {
				return err
			}
			printFingerprints(fps)
			return nil
		},
	}
}

func printFingerprints(fps domain.SecretFingerprints) {
	show := func(name string, fp domain.Fingerprint) {
		if fp == "" {
			fp = "(unset)"
		}
		fmt.Printf("%-20s %s\n", name+":", fp)
	}
	show("API key", fps.APIKey)
	show("reCAPTCHA site key", fps.RecaptchaSiteKey)
	show("Approov site key", fps.ApproovSiteKey)
}
