package oauth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Credentials mirrors the oauth2.json layout shared with the other tooling
// that talks to Yahoo: app identity plus the last issued token.
type Credentials struct {
	ConsumerKey    string  `json:"consumer_key"`
	ConsumerSecret string  `json:"consumer_secret"`
	RedirectURI    string  `json:"redirect_uri"`
	TokenTime      float64 `json:"token_time,omitempty"`
	AccessToken    string  `json:"access_token,omitempty"`
	RefreshToken   string  `json:"refresh_token,omitempty"`
}

// LoadCredentials reads and validates the credential file.
func LoadCredentials(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file %s: %w", path, err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file %s: %w", path, err)
	}

	if creds.ConsumerKey == "" || creds.ConsumerSecret == "" {
		return nil, fmt.Errorf("credentials file %s is missing consumer_key or consumer_secret", path)
	}

	return &creds, nil
}

// Save writes the credential record back to path. The write goes through a
// temp file and rename so a crash mid-write never leaves a truncated file.
func (c *Credentials) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".oauth2-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp credentials file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write credentials: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp credentials file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace credentials file: %w", err)
	}

	return nil
}
