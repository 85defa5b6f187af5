package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/daily-report-bot/internal/domain"
	"github.com/diegoclair/daily-report-bot/internal/domain/entity"
)

type Config struct {
	Slack        SlackConfig
	Schedule     ScheduleConfig
	Log          LogConfig
	DatabasePath string
	Port         string
	Roster       []entity.Member
}

type SlackConfig struct {
	BotToken        string
	SigningSecret   string
	ReportChannelID string

	// OAuth token rotation; when ClientID is empty BotToken is used as is
	ClientID             string
	ClientSecret         string
	RefreshToken         string
	TokenRefreshInterval time.Duration
}

// RotatesToken reports whether the bot token is refreshed through OAuth.
func (s SlackConfig) RotatesToken() bool {
	return s.ClientID != "" && s.ClientSecret != "" && s.RefreshToken != ""
}

type ScheduleConfig struct {
	Location     *time.Location
	ReminderTime string // HH:MM
	AuditTime    string // HH:MM
	// RemindOnce skips tasks already reminded since they were last reported
	RemindOnce bool
}

type LogConfig struct {
	Level      string
	Format     string // json or text
	Console    bool
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func Load() (*Config, error) {
	loc, err := loadLocation(getEnv("TIMEZONE", "Local"))
	if err != nil {
		return nil, err
	}

	roster, err := LoadRoster(getEnv("ROSTER_FILE", ""), getEnv("TEAM_ROSTER", ""))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Slack: SlackConfig{
			BotToken:             getEnv("SLACK_BOT_TOKEN", ""),
			SigningSecret:        getEnv("SLACK_SIGNING_SECRET", ""),
			ReportChannelID:      getEnv("REPORT_CHANNEL_ID", ""),
			ClientID:             getEnv("SLACK_CLIENT_ID", ""),
			ClientSecret:         getEnv("SLACK_CLIENT_SECRET", ""),
			RefreshToken:         getEnv("SLACK_REFRESH_TOKEN", ""),
			TokenRefreshInterval: getEnvDuration("TOKEN_REFRESH_INTERVAL", time.Hour),
		},
		Schedule: ScheduleConfig{
			Location:     loc,
			ReminderTime: getEnv("REMINDER_TIME", domain.DefaultReminderTime),
			AuditTime:    getEnv("AUDIT_TIME", domain.DefaultAuditTime),
			RemindOnce:   getEnvBool("REMIND_ONCE", false),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Console:    getEnvBool("LOG_CONSOLE", true),
			File:       getEnv("LOG_FILE", ""),
			MaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 100),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
			MaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 30),
		},
		DatabasePath: getEnv("DATABASE_PATH", "./reports.db"),
		Port:         getEnv("PORT", "3000"),
		Roster:       roster,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	for name, value := range map[string]string{
		"REMINDER_TIME": c.Schedule.ReminderTime,
		"AUDIT_TIME":    c.Schedule.AuditTime,
	} {
		if _, err := time.Parse("15:04", value); err != nil {
			return fmt.Errorf("invalid %s %q. Use HH:MM (24-hour format). Example: 09:30", name, value)
		}
	}
	if c.Schedule.ReminderTime == c.Schedule.AuditTime {
		return fmt.Errorf("REMINDER_TIME and AUDIT_TIME must differ")
	}
	if c.Slack.TokenRefreshInterval <= 0 {
		return fmt.Errorf("TOKEN_REFRESH_INTERVAL must be positive")
	}
	return nil
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" || strings.EqualFold(name, "Local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", name, err)
	}
	return loc, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return defaultValue
}
