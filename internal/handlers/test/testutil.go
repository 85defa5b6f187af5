package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/daily-report-bot/internal/handlers"
	"github.com/diegoclair/daily-report-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const SigningSecret = "test-signing-secret"

type ServiceMocks struct {
	ReportServiceMock *mocks.MockReportService
	MessengerMock     *mocks.MockMessenger
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		ReportServiceMock: mocks.NewMockReportService(ctrl),
		MessengerMock:     mocks.NewMockMessenger(ctrl),
	}

	handler = handlers.New(m.MessengerMock, m.ReportServiceMock, SigningSecret)

	return
}

// MessageEvent builds an event_callback payload carrying a channel message.
func MessageEvent(t *testing.T, fields map[string]string) string {
	t.Helper()

	inner := map[string]string{
		"type":    "message",
		"channel": "C123456789",
		"user":    "U123456789",
		"ts":      "1700000000.000100",
	}
	for k, v := range fields {
		inner[k] = v
	}

	payload, err := json.Marshal(map[string]any{
		"token":      "test-token",
		"team_id":    "T123456789",
		"api_app_id": "A123456789",
		"type":       "event_callback",
		"event_id":   "Ev123456789",
		"event_time": 1700000000,
		"event":      inner,
	})
	require.NoError(t, err)
	return string(payload)
}

// CreateSlackRequest creates a properly signed Slack Events API request
func CreateSlackRequest(t *testing.T, body, signingSecret string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, "/slack/events", strings.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")

	// Generate Slack signature
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)

	sig := generateSlackSignature(signingSecret, timestamp, body)
	req.Header.Set("X-Slack-Signature", sig)

	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
