package oauth

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCredentialsMissingFile(t *testing.T) {
	_, err := LoadCredentials(filepath.Join(t.TempDir(), "oauth2.json"))
	if err == nil {
		t.Fatal("expected error for missing credentials file")
	}
}

func TestLoadCredentialsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oauth2.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadCredentials(path)
	if err == nil {
		t.Fatal("expected error for malformed credentials file")
	}
}

func TestLoadCredentialsMissingConsumerKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oauth2.json")
	if err := os.WriteFile(path, []byte(`{"consumer_secret": "s"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadCredentials(path)
	if err == nil {
		t.Fatal("expected error when consumer_key is missing")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oauth2.json")
	creds := &Credentials{
		ConsumerKey:    "key",
		ConsumerSecret: "secret",
		RedirectURI:    "http://localhost:8080/callback",
		TokenTime:      1700000000,
		AccessToken:    "access",
		RefreshToken:   "refresh",
	}

	if err := creds.Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := LoadCredentials(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *creds {
		t.Fatalf("round trip mismatch: got %+v, want %+v", loaded, creds)
	}
}
