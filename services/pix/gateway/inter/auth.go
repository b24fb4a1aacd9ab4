package inter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	nrpkg "github.com/Davidepaula1212/pix-inter-backend/internal/pkg/newrelic"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// GetAccessToken performs the OAuth client-credentials grant against
// the configured token endpoint. Any failure collapses into a generic
// token-acquisition error; there is no retry.
func (c *Client) GetAccessToken(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)
	form.Set("scope", c.cfg.Scopes)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.OAuthURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("token acquisition failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		return "", fmt.Errorf("token acquisition failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("token acquisition failed: status %d", resp.StatusCode)
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("token acquisition failed: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("token acquisition failed: empty access token")
	}

	return token.AccessToken, nil
}
