package types

// Secrets are the deployment secrets kept in the encrypted profile.
type Secrets struct {
	APIKey           string `json:"api_key,omitempty"`
	RecaptchaSiteKey string `json:"recaptcha_site_key,omitempty"`
	ApproovSiteKey   string `json:"approov_site_key,omitempty"`
}

// Empty reports whether no secret is set.
func (s Secrets) Empty() bool {
	return s.APIKey == "" && s.RecaptchaSiteKey == "" && s.ApproovSiteKey == ""
}

// SecretFingerprints are display-safe digests of Secrets.
type SecretFingerprints struct {
	APIKey           Fingerprint
	RecaptchaSiteKey Fingerprint
	ApproovSiteKey   Fingerprint
}
