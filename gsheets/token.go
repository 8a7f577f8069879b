package gsheets

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/net/context"
	"golang.org/x/oauth2"
)

// Retrieves a cached token (requesting and caching a new one if necessary)
// and returns the authorized HTTP client.
func getClient(ctx context.Context, tokens string, config *oauth2.Config) (*http.Client, error) {
	token, err := tokenFromFile(tokens)
	if err != nil {
		if token, err = getTokenFromWeb(ctx, config); err != nil {
			return nil, err
		}

		saveToken(tokens, token)
	}

	return config.Client(ctx, token), nil
}

// Requests a token interactively - prints the authorization URL and reads the
// authorization code from stdin.
func getTokenFromWeb(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error) {
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Go to the following link in your browser then type the "+
		"authorization code: \n%v\n", authURL)

	var authCode string
	if _, err := fmt.Scan(&authCode); err != nil {
		return nil, fmt.Errorf("unable to read authorization code (%v)", err)
	}

	token, err := config.Exchange(ctx, authCode)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from web (%v)", err)
	}

	return token, nil
}

// Retrieves a token from a local file.
func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	token := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(token)

	return token, err
}

// Saves a token to a file path.
func saveToken(path string, token *oauth2.Token) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		warnf("unable to cache oauth token (%v)", err)
		return
	}

	defer f.Close()

	json.NewEncoder(f).Encode(token)
}
