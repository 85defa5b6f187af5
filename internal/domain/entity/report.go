package entity

import (
	"strings"
	"time"

	"github.com/diegoclair/daily-report-bot/internal/domain"
)

type ReportStatus string

const (
	ReportComplete ReportStatus = "complete"
	ReportPending  ReportStatus = "pending"
)

// DailyReport is one user's submission for one day, stored at
// reports/{date}/users/{userID}.
type DailyReport struct {
	UserID    string       `json:"-"`
	Username  string       `json:"username"`
	Date      string       `json:"date"`
	Summary   string       `json:"summary"`
	Pending   string       `json:"pending"`
	Reason    string       `json:"reason"`
	GitPush   bool         `json:"gitPush"`
	Status    ReportStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
}

// Identity is the sender of an inbound message.
type Identity struct {
	UserID   string
	Username string
}

// HasPendingWork reports whether pending describes unresolved work: it is
// non-empty and not the "none" sentinel.
func HasPendingWork(pending string) bool {
	pending = strings.TrimSpace(pending)
	return pending != "" && !strings.EqualFold(pending, domain.NoPendingWork)
}

// ReportStatusFor derives the report status from the pending text.
func ReportStatusFor(pending string) ReportStatus {
	if HasPendingWork(pending) {
		return ReportPending
	}
	return ReportComplete
}
