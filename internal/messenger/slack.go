package messenger

import (
	"context"
	"fmt"
	"strings"

	"github.com/diegoclair/daily-report-bot/internal/domain"
	"github.com/diegoclair/daily-report-bot/internal/domain/contract"
	"github.com/slack-go/slack"
)

// ClientFactory builds a Slack client for the given bot token.
type ClientFactory func(token string) contract.SlackClient

type slackMessenger struct {
	credentials contract.CredentialProvider
	newClient   ClientFactory
	channelID   string
}

// NewSlack returns a Messenger posting notices to channelID. The token is
// read from credentials on every call so a refreshed token is picked up
// without a restart.
func NewSlack(credentials contract.CredentialProvider, channelID string, opts ...slack.Option) contract.Messenger {
	return NewSlackWithFactory(credentials, channelID, func(token string) contract.SlackClient {
		return slack.New(token, opts...)
	})
}

func NewSlackWithFactory(credentials contract.CredentialProvider, channelID string, newClient ClientFactory) contract.Messenger {
	return &slackMessenger{
		credentials: credentials,
		newClient:   newClient,
		channelID:   channelID,
	}
}

func (m *slackMessenger) client() (contract.SlackClient, error) {
	token, err := m.credentials.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrNotifierFailure, err)
	}
	return m.newClient(token), nil
}

func (m *slackMessenger) Notify(ctx context.Context, text string) error {
	return m.post(ctx, m.channelID, text)
}

func (m *slackMessenger) Reply(ctx context.Context, channelID, threadTS, text string) error {
	return m.post(ctx, channelID, text, slack.MsgOptionTS(threadTS))
}

func (m *slackMessenger) post(ctx context.Context, channelID, text string, opts ...slack.MsgOption) error {
	client, err := m.client()
	if err != nil {
		return err
	}

	opts = append([]slack.MsgOption{
		slack.MsgOptionText(text, false),
		slack.MsgOptionAsUser(false),
	}, opts...)

	if _, _, err := client.PostMessageContext(ctx, channelID, opts...); err != nil {
		return fmt.Errorf("failed to send Slack message: %w: %w", domain.ErrNotifierFailure, err)
	}
	return nil
}

// DisplayName resolves userID to the name shown in notices: real name,
// then display name, then the handle.
func (m *slackMessenger) DisplayName(ctx context.Context, userID string) (string, error) {
	client, err := m.client()
	if err != nil {
		return "", err
	}

	user, err := client.GetUserInfoContext(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to get user info from Slack: %w: %w", domain.ErrNotifierFailure, err)
	}

	for _, name := range []string{user.RealName, user.Profile.RealName, user.Profile.DisplayName, user.Name} {
		if name = strings.TrimSpace(name); name != "" {
			return name, nil
		}
	}
	return userID, nil
}
