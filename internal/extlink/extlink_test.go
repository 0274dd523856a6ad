package extlink_test

import (
	"errors"
	"testing"

	"github.com/fernet/fernet-go"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/apperrors"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/config"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/extlink"
)

func TestService_Link(t *testing.T) {
	t.Run("unconfigured service reports not configured", func(t *testing.T) {
		svc, err := extlink.NewService(config.ExternalPortfolioConfig{})
		if err != nil {
			t.Fatalf("NewService failed: %v", err)
		}

		if svc.Configured() {
			t.Errorf("Expected unconfigured service")
		}
		if _, err := svc.Link(); !errors.Is(err, apperrors.ErrExternalLinkNotConfigured) {
			t.Errorf("Expected ErrExternalLinkNotConfigured, got %v", err)
		}
	})

	t.Run("url without token is returned as-is", func(t *testing.T) {
		svc, err := extlink.NewService(config.ExternalPortfolioConfig{
			URL: "https://pms.example.com/portfolios",
		})
		if err != nil {
			t.Fatalf("NewService failed: %v", err)
		}

		link, err := svc.Link()
		if err != nil {
			t.Fatalf("Link failed: %v", err)
		}
		if link != "https://pms.example.com/portfolios" {
			t.Errorf("Expected plain URL, got %q", link)
		}
	})

	t.Run("encrypted token is decrypted and attached", func(t *testing.T) {
		var key fernet.Key
		if err := key.Generate(); err != nil {
			t.Fatalf("Failed to generate key: %v", err)
		}
		token, err := fernet.EncryptAndSign([]byte("secret-token"), &key)
		if err != nil {
			t.Fatalf("Failed to encrypt token: %v", err)
		}

		svc, err := extlink.NewService(config.ExternalPortfolioConfig{
			URL:            "https://pms.example.com/portfolios",
			EncryptedToken: string(token),
			Key:            key.Encode(),
		})
		if err != nil {
			t.Fatalf("NewService failed: %v", err)
		}

		link, err := svc.Link()
		if err != nil {
			t.Fatalf("Link failed: %v", err)
		}
		want := "https://pms.example.com/portfolios?token=secret-token"
		if link != want {
			t.Errorf("Expected %q, got %q", want, link)
		}
	})

	t.Run("token without a valid key is a setup error", func(t *testing.T) {
		_, err := extlink.NewService(config.ExternalPortfolioConfig{
			URL:            "https://pms.example.com",
			EncryptedToken: "ciphertext",
			Key:            "not-a-key",
		})
		if err == nil {
			t.Errorf("Expected an error for an undecodable key")
		}
	})
}
