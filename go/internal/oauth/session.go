package oauth

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

const (
	authURL  = "https://api.login.yahoo.com/oauth2/request_auth"
	tokenURL = "https://api.login.yahoo.com/oauth2/get_token"

	// Yahoo access tokens live for an hour. Refresh a minute early so a
	// token never expires mid-run.
	tokenLifetime = time.Hour
	expirySkew    = time.Minute
)

// Session owns the OAuth token lifecycle: it loads the credential record,
// decides whether the stored access token is still usable, refreshes or runs
// the interactive authorization flow when it is not, and persists the result.
type Session struct {
	creds *Credentials
	path  string
	clock clockwork.Clock
	conf  *oauth2.Config
}

// NewSession loads the credential file at path and prepares a session.
func NewSession(path string, clock clockwork.Clock) (*Session, error) {
	creds, err := LoadCredentials(path)
	if err != nil {
		return nil, err
	}

	conf := &oauth2.Config{
		ClientID:     creds.ConsumerKey,
		ClientSecret: creds.ConsumerSecret,
		RedirectURL:  creds.RedirectURI,
		Endpoint: oauth2.Endpoint{
			AuthURL:  authURL,
			TokenURL: tokenURL,
		},
	}

	return &Session{
		creds: creds,
		path:  path,
		clock: clock,
		conf:  conf,
	}, nil
}

// TokenValid reports whether the stored access token is still inside its
// lifetime window.
func (s *Session) TokenValid() bool {
	if s.creds.AccessToken == "" || s.creds.TokenTime == 0 {
		return false
	}
	issued := time.Unix(int64(s.creds.TokenTime), 0)
	return s.clock.Now().Before(issued.Add(tokenLifetime - expirySkew))
}

// EnsureToken returns a valid access token, refreshing or running the
// one-time interactive authorization as needed. Any newly issued token is
// written back to the credential file before the token is returned.
func (s *Session) EnsureToken(ctx context.Context) (string, error) {
	if s.TokenValid() {
		return s.creds.AccessToken, nil
	}

	var (
		tok *oauth2.Token
		err error
	)
	if s.creds.RefreshToken == "" {
		log.Info().Msg("no refresh token on file, starting interactive authorization")
		tok, err = s.authorize(ctx)
	} else {
		tok, err = s.refresh(ctx)
	}
	if err != nil {
		return "", err
	}

	return s.store(tok)
}

func (s *Session) refresh(ctx context.Context) (*oauth2.Token, error) {
	src := s.conf.TokenSource(ctx, &oauth2.Token{RefreshToken: s.creds.RefreshToken})
	tok, err := src.Token()
	if err != nil {
		return nil, fmt.Errorf("token refresh rejected: %w", err)
	}
	log.Debug().Msg("access token refreshed")
	return tok, nil
}

func (s *Session) store(tok *oauth2.Token) (string, error) {
	s.creds.AccessToken = tok.AccessToken
	if tok.RefreshToken != "" {
		s.creds.RefreshToken = tok.RefreshToken
	}
	s.creds.TokenTime = float64(s.clock.Now().Unix())

	if err := s.creds.Save(s.path); err != nil {
		return "", err
	}
	log.Info().Str("file", s.path).Msg("persisted updated OAuth token")
	return s.creds.AccessToken, nil
}
