package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/daily-report-bot/internal/domain"
	"github.com/diegoclair/daily-report-bot/internal/domain/contract"
	"github.com/diegoclair/daily-report-bot/internal/domain/entity"
	"github.com/diegoclair/daily-report-bot/internal/logger"
)

type auditJob struct {
	dm       contract.DataManager
	notifier contract.Notifier
	roster   []entity.Member
	loc      *time.Location
	now      func() time.Time
}

func newAuditJob(dm contract.DataManager, notifier contract.Notifier, roster []entity.Member, loc *time.Location, now func() time.Time) *auditJob {
	return &auditJob{
		dm:       dm,
		notifier: notifier,
		roster:   roster,
		loc:      loc,
		now:      now,
	}
}

// Run posts the evening check: who has not reported today and what is
// still open from yesterday. Nothing is sent if either read fails.
func (j *auditJob) Run(ctx context.Context) error {
	now := j.now()
	today := domain.DayKey(now, j.loc)
	yesterday := domain.PreviousDayKey(now, j.loc)

	submitted, err := j.dm.Report().ListByDay(ctx, today)
	if err != nil {
		return wrapStoreErr("list today's reports", err)
	}

	carried, err := j.dm.Report().ListByDayAndStatus(ctx, yesterday, entity.ReportPending)
	if err != nil {
		return wrapStoreErr("list yesterday's pending reports", err)
	}

	missing := missingMembers(j.roster, submitted)

	if err := j.notifier.Notify(ctx, composeAudit(today, missing, carried)); err != nil {
		return wrapNotifierErr("send daily report check", err)
	}

	logger.Info("daily report check sent",
		"day", today,
		"submitted", len(submitted),
		"missing", len(missing),
		"carried_forward", len(carried),
	)
	return nil
}

// missingMembers keeps roster order.
func missingMembers(roster []entity.Member, submitted []*entity.DailyReport) []entity.Member {
	reported := make(map[string]bool, len(submitted))
	for _, r := range submitted {
		reported[r.UserID] = true
	}

	var missing []entity.Member
	for _, m := range roster {
		if !reported[m.ID] {
			missing = append(missing, m)
		}
	}
	return missing
}

func composeAudit(today string, missing []entity.Member, carried []*entity.DailyReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📅 Daily Report Check (%s)\n\n", today)

	if len(missing) == 0 {
		b.WriteString("✅ All members submitted report. Nice work team 👏\n")
	} else {
		b.WriteString("⚠️ Missing reports:\n")
		for _, m := range missing {
			fmt.Fprintf(&b, "• %s please submit your report.\n", m.Name)
		}
	}

	if len(carried) > 0 {
		b.WriteString("\n⏳ Still pending from yesterday:\n")
		for _, r := range carried {
			fmt.Fprintf(&b, "• %s: yesterday pending \"%s\"\n", r.Username, r.Pending)
		}
		b.WriteString("\nPlease close this today.")
	}

	return b.String()
}
