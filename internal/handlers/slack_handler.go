package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/diegoclair/daily-report-bot/internal/domain/contract"
	"github.com/diegoclair/daily-report-bot/internal/domain/entity"
	"github.com/diegoclair/daily-report-bot/internal/domain/report"
	"github.com/diegoclair/daily-report-bot/internal/logger"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
)

const reportSavedText = "✅ Report saved in system. Thank you."

type SlackHandler struct {
	messenger     contract.Messenger
	reports       contract.ReportService
	signingSecret string
}

func New(messenger contract.Messenger, reports contract.ReportService, signingSecret string) *SlackHandler {
	return &SlackHandler{
		messenger:     messenger,
		reports:       reports,
		signingSecret: signingSecret,
	}
}

// HandleEvents receives Slack Events API callbacks. Only human channel
// messages are considered; everything else is acknowledged and dropped.
func (h *SlackHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		challenge, ok := event.Data.(*slackevents.EventsAPIURLVerificationEvent)
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(challenge.Challenge))
		return

	case slackevents.CallbackEvent:
		msg, ok := event.InnerEvent.Data.(*slackevents.MessageEvent)
		if !ok || msg.BotID != "" || msg.SubType != "" || msg.User == "" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(h.handleMessage(r, msg))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *SlackHandler) handleMessage(r *http.Request, msg *slackevents.MessageEvent) int {
	ctx := r.Context()

	threadTS := msg.ThreadTimeStamp
	if threadTS == "" {
		threadTS = msg.TimeStamp
	}

	parsed := report.Parse(msg.Text)
	if parsed == nil {
		if report.LooksLikeReport(msg.Text) {
			h.reply(r, msg.Channel, threadTS, report.FormatHelp())
		}
		return http.StatusOK
	}

	identity := entity.Identity{UserID: msg.User, Username: msg.User}
	name, err := h.messenger.DisplayName(ctx, msg.User)
	if err != nil {
		logger.Warn("failed to resolve display name, using user id", "user", msg.User, "error", err)
	} else {
		identity.Username = name
	}

	if err := h.reports.SaveUserReport(ctx, identity, parsed, h.reports.DayKeyFor(parsed)); err != nil {
		logger.Error("failed to save report", "user", msg.User, "error", err)
		return http.StatusInternalServerError
	}

	h.reply(r, msg.Channel, threadTS, reportSavedText)
	return http.StatusOK
}

func (h *SlackHandler) reply(r *http.Request, channelID, threadTS, text string) {
	if err := h.messenger.Reply(r.Context(), channelID, threadTS, text); err != nil {
		logger.Error("failed to reply in thread", "channel", channelID, "error", err)
	}
}

func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
