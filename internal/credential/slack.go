package credential

import (
	"context"
	"net/http"
	"sync"

	"github.com/slack-go/slack"
)

// oauthRefresher exchanges a refresh token for a new bot token. Slack
// rotates the refresh token on every exchange, so the latest one is kept.
type oauthRefresher struct {
	mu           sync.Mutex
	httpClient   *http.Client
	clientID     string
	clientSecret string
	refreshToken string
}

// NewSlackRefresher returns a RefreshFunc backed by oauth.v2.access with
// grant_type=refresh_token.
func NewSlackRefresher(httpClient *http.Client, clientID, clientSecret, refreshToken string) RefreshFunc {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	r := &oauthRefresher{
		httpClient:   httpClient,
		clientID:     clientID,
		clientSecret: clientSecret,
		refreshToken: refreshToken,
	}
	return r.refresh
}

func (r *oauthRefresher) refresh(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	resp, err := slack.RefreshOAuthV2TokenContext(ctx, r.httpClient, r.clientID, r.clientSecret, r.refreshToken)
	if err != nil {
		return "", err
	}

	if resp.RefreshToken != "" {
		r.refreshToken = resp.RefreshToken
	}
	return resp.AccessToken, nil
}
