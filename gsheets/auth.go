package gsheets

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/sheets/v4"
)

// Config carries the credential source for a Bridge. The credentials file may
// be either a Google service account key or an OAuth2 'installed application'
// client secret - service account keys are authorized directly, installed
// application credentials go through the cached-token flow (see token.go).
type Config struct {
	// Credentials is the path to the Google API credentials JSON file.
	Credentials string

	// Tokens is the directory for cached OAuth2 tokens. Only used with
	// 'installed application' credentials. Defaults to the credentials file
	// directory.
	Tokens string

	// Scopes is the list of OAuth2 scopes to authorize. Defaults to the
	// Google Sheets read/write scope.
	Scopes []string
}

func (c Config) scopes() []string {
	if len(c.Scopes) == 0 {
		return []string{sheets.SpreadsheetsScope}
	}

	return c.Scopes
}

func (c Config) tokens() string {
	dir, file := filepath.Split(c.Credentials)
	name := strings.TrimSuffix(file, filepath.Ext(file))

	if c.Tokens != "" {
		dir = c.Tokens
	}

	return filepath.Join(dir, fmt.Sprintf("%s.tokens", name))
}

// client acquires an authorized HTTP client for the configured credentials.
func (c Config) client(ctx context.Context) (*http.Client, error) {
	b, err := os.ReadFile(c.Credentials)
	if err != nil {
		return nil, err
	}

	if config, err := google.JWTConfigFromJSON(b, c.scopes()...); err == nil {
		return config.Client(ctx), nil
	}

	config, err := google.ConfigFromJSON(b, c.scopes()...)
	if err != nil {
		return nil, err
	}

	return getClient(ctx, c.tokens(), config)
}
