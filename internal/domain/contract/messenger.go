package contract

//go:generate mockgen -source=messenger.go -destination=../../../mocks/messenger_mock.go -package=mocks

import (
	"context"

	"github.com/slack-go/slack"
)

// Notifier delivers a notice to the team's report channel
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// Messenger is the chat platform as seen by the webhook handler
type Messenger interface {
	Notifier
	Reply(ctx context.Context, channelID, threadTS, text string) error
	DisplayName(ctx context.Context, userID string) (string, error)
}

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// GetUserInfoContext retrieves user information from Slack
	GetUserInfoContext(ctx context.Context, userID string) (*slack.User, error)

	// PostMessageContext sends a message to a Slack channel
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// CredentialProvider hands out the current bot token
type CredentialProvider interface {
	Token() (string, error)
}
