package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/diegoclair/daily-report-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"SLACK_BOT_TOKEN", "SLACK_CLIENT_ID", "TIMEZONE", "REMINDER_TIME", "AUDIT_TIME",
		"REMIND_ONCE", "ROSTER_FILE", "TEAM_ROSTER", "DATABASE_PATH", "PORT", "TOKEN_REFRESH_INTERVAL",
		"LOG_LEVEL", "LOG_FORMAT", "LOG_CONSOLE",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "./reports.db", cfg.DatabasePath)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "10:00", cfg.Schedule.ReminderTime)
	assert.Equal(t, "21:00", cfg.Schedule.AuditTime)
	assert.False(t, cfg.Schedule.RemindOnce)
	assert.Equal(t, time.Local, cfg.Schedule.Location)
	assert.Equal(t, time.Hour, cfg.Slack.TokenRefreshInterval)
	assert.False(t, cfg.Slack.RotatesToken())
	assert.Empty(t, cfg.Roster)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Log.Console)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("TIMEZONE", "Asia/Karachi")
	t.Setenv("REMINDER_TIME", "09:30")
	t.Setenv("AUDIT_TIME", "18:00")
	t.Setenv("REMIND_ONCE", "true")
	t.Setenv("TEAM_ROSTER", "U1:Ali Khan, U2:Sara")
	t.Setenv("ROSTER_FILE", "")
	t.Setenv("SLACK_CLIENT_ID", "cid")
	t.Setenv("SLACK_CLIENT_SECRET", "secret")
	t.Setenv("SLACK_REFRESH_TOKEN", "xoxe-1")
	t.Setenv("TOKEN_REFRESH_INTERVAL", "30m")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("LOG_CONSOLE", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Asia/Karachi", cfg.Schedule.Location.String())
	assert.Equal(t, "09:30", cfg.Schedule.ReminderTime)
	assert.Equal(t, "18:00", cfg.Schedule.AuditTime)
	assert.True(t, cfg.Schedule.RemindOnce)
	assert.True(t, cfg.Slack.RotatesToken())
	assert.Equal(t, 30*time.Minute, cfg.Slack.TokenRefreshInterval)
	assert.Equal(t, []entity.Member{{ID: "U1", Name: "Ali Khan"}, {ID: "U2", Name: "Sara"}}, cfg.Roster)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.Log.Console)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "bad reminder time", env: map[string]string{"REMINDER_TIME": "25:00"}},
		{name: "bad audit time", env: map[string]string{"AUDIT_TIME": "9pm"}},
		{name: "same times", env: map[string]string{"REMINDER_TIME": "10:00", "AUDIT_TIME": "10:00"}},
		{name: "unknown timezone", env: map[string]string{"TIMEZONE": "Mars/Olympus"}},
		{name: "duplicate roster", env: map[string]string{"TEAM_ROSTER": "U1:A,U1:B"}},
		{name: "missing roster file", env: map[string]string{"ROSTER_FILE": "/nonexistent/roster.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"REMINDER_TIME", "AUDIT_TIME", "TIMEZONE", "TEAM_ROSTER", "ROSTER_FILE"} {
				t.Setenv(key, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadRoster_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	content := `members:
  - id: U123
    name: Muhammad Arslan
  - id: U456
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	members, err := LoadRoster(path, "U9:Ignored")
	require.NoError(t, err)
	assert.Equal(t, []entity.Member{
		{ID: "U123", Name: "Muhammad Arslan"},
		{ID: "U456", Name: "U456"},
	}, members)
}

func TestParseRosterList(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []entity.Member
		wantErr bool
	}{
		{name: "empty", input: "", want: []entity.Member{}},
		{name: "ids only", input: "U1,U2", want: []entity.Member{{ID: "U1", Name: "U1"}, {ID: "U2", Name: "U2"}}},
		{name: "keeps order", input: "U2:Zed,U1:Amy", want: []entity.Member{{ID: "U2", Name: "Zed"}, {ID: "U1", Name: "Amy"}}},
		{name: "missing id", input: ":Nobody", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRosterList(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRosterYAML_Invalid(t *testing.T) {
	_, err := ParseRosterYAML([]byte("members: [oops"))
	assert.Error(t, err)
}
