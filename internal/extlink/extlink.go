// Package extlink resolves the link to the external portfolio-management
// system that "Accept and change" triage redirects to. The link and its access
// token live in configuration, never in code; the token is held
// fernet-encrypted at rest and decrypted once at startup.
package extlink

import (
	"fmt"
	"net/url"

	"github.com/fernet/fernet-go"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/apperrors"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/config"
)

// Service resolves the external portfolio-management link.
type Service struct {
	baseURL string
	token   string
}

// NewService builds the link service from configuration. A missing URL leaves
// the service unconfigured, which is a valid state: the link endpoint then
// reports not-found. An encrypted token without a decryption key is an error.
func NewService(cfg config.ExternalPortfolioConfig) (*Service, error) {
	s := &Service{baseURL: cfg.URL}

	if cfg.EncryptedToken == "" {
		return s, nil
	}

	key, err := fernet.DecodeKey(cfg.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to decode external portfolio key: %w", err)
	}

	// TTL 0: the token does not expire; rotation happens by re-issuing config.
	token := fernet.VerifyAndDecrypt([]byte(cfg.EncryptedToken), 0, []*fernet.Key{key})
	if token == nil {
		return nil, fmt.Errorf("failed to decrypt external portfolio token")
	}
	s.token = string(token)

	return s, nil
}

// Configured reports whether an external link has been set up.
func (s *Service) Configured() bool {
	return s.baseURL != ""
}

// Link returns the redirect target, with the decrypted access token attached
// as a query parameter when one is configured.
func (s *Service) Link() (string, error) {
	if !s.Configured() {
		return "", apperrors.ErrExternalLinkNotConfigured
	}
	if s.token == "" {
		return s.baseURL, nil
	}

	u, err := url.Parse(s.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid external portfolio URL: %w", err)
	}
	q := u.Query()
	q.Set("token", s.token)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
