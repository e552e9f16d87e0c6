package oauth

import (
	"bufio"
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

// How long we wait for the user to complete the browser consent screen.
const authorizeTimeout = 5 * time.Minute

// authorize runs the 3-legged flow: print the consent URL, capture the
// authorization code from the redirect (or stdin for out-of-band apps), and
// exchange it for a token.
func (s *Session) authorize(ctx context.Context) (*oauth2.Token, error) {
	state := generateState()
	consentURL := s.conf.AuthCodeURL(state, oauth2.AccessTypeOffline)

	fmt.Fprintf(os.Stderr, "Open the following URL in a browser and authorize access:\n\n  %s\n\n", consentURL)

	var (
		code string
		err  error
	)
	if s.creds.RedirectURI == "" || s.creds.RedirectURI == "oob" {
		code, err = readCodeFromStdin()
	} else {
		code, err = captureRedirect(ctx, s.creds.RedirectURI, state)
	}
	if err != nil {
		return nil, err
	}

	tok, err := s.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("authorization code exchange rejected: %w", err)
	}
	return tok, nil
}

// captureRedirect serves the redirect URI on localhost just long enough to
// receive the authorization code.
func captureRedirect(ctx context.Context, redirectURI, state string) (string, error) {
	u, err := url.Parse(redirectURI)
	if err != nil {
		return "", fmt.Errorf("invalid redirect_uri %s: %w", redirectURI, err)
	}
	path := u.Path
	if path == "" {
		path = "/"
	}

	type result struct {
		code string
		err  error
	}
	resultCh := make(chan result, 1)

	mux := http.NewServeMux()
	mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("state"); got != state {
			http.Error(w, "state mismatch", http.StatusBadRequest)
			resultCh <- result{err: fmt.Errorf("authorization state mismatch")}
			return
		}
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "missing code", http.StatusBadRequest)
			resultCh <- result{err: fmt.Errorf("redirect did not include an authorization code")}
			return
		}
		fmt.Fprintln(w, "Authorization complete. You can close this window.")
		resultCh <- result{code: code}
	})

	srv := &http.Server{Addr: u.Host, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			resultCh <- result{err: fmt.Errorf("callback listener failed: %w", err)}
		}
	}()
	defer srv.Close()

	log.Info().Str("addr", u.Host).Msg("waiting for OAuth redirect")

	select {
	case res := <-resultCh:
		return res.code, res.err
	case <-time.After(authorizeTimeout):
		return "", fmt.Errorf("timed out waiting for authorization redirect")
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func readCodeFromStdin() (string, error) {
	fmt.Fprint(os.Stderr, "Enter the verification code: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read verification code: %w", err)
	}
	code := strings.TrimSpace(line)
	if code == "" {
		return "", fmt.Errorf("empty verification code")
	}
	return code, nil
}

func generateState() string {
	b := make([]byte, 32)
	rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}
