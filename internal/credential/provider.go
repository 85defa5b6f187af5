package credential

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/diegoclair/daily-report-bot/internal/domain"
	"github.com/diegoclair/daily-report-bot/internal/logger"
)

// RefreshFunc obtains a fresh access token.
type RefreshFunc func(ctx context.Context) (string, error)

// Provider holds the bot token used for outbound calls. It starts empty
// unless seeded, and Token fails with domain.ErrCredentialUnavailable until
// a token is set.
type Provider struct {
	mu      sync.RWMutex
	token   string
	refresh RefreshFunc
}

func NewProvider(refresh RefreshFunc) *Provider {
	return &Provider{refresh: refresh}
}

// NewStatic returns a provider that always hands out token.
func NewStatic(token string) *Provider {
	p := &Provider{}
	p.Set(token)
	return p
}

func (p *Provider) Token() (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.token == "" {
		return "", domain.ErrCredentialUnavailable
	}
	return p.token, nil
}

func (p *Provider) Set(token string) {
	p.mu.Lock()
	p.token = token
	p.mu.Unlock()
}

// Refresh replaces the token using the refresh func. On failure the
// previous token stays in place.
func (p *Provider) Refresh(ctx context.Context) error {
	if p.refresh == nil {
		return nil
	}

	token, err := p.refresh(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh token: %w: %w", domain.ErrCredentialUnavailable, err)
	}
	if token == "" {
		return fmt.Errorf("failed to refresh token: %w: empty access token", domain.ErrCredentialUnavailable)
	}

	p.Set(token)
	return nil
}

// Run refreshes immediately and then every interval until ctx is done.
func (p *Provider) Run(ctx context.Context, interval time.Duration) {
	if p.refresh == nil {
		return
	}

	p.refreshAndLog(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.refreshAndLog(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (p *Provider) refreshAndLog(ctx context.Context) {
	if err := p.Refresh(ctx); err != nil {
		logger.Error("token refresh failed", "error", err)
		return
	}
	logger.Info("bot token refreshed")
}
