package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/daily-report-bot/internal/domain"
	"github.com/diegoclair/daily-report-bot/internal/domain/contract"
	"github.com/diegoclair/daily-report-bot/internal/domain/entity"
	"github.com/diegoclair/daily-report-bot/internal/domain/report"
	"github.com/diegoclair/daily-report-bot/internal/logger"
)

type reportService struct {
	dm  contract.DataManager
	loc *time.Location
	now func() time.Time
}

func newReportService(dm contract.DataManager, loc *time.Location, now func() time.Time) *reportService {
	return &reportService{
		dm:  dm,
		loc: loc,
		now: now,
	}
}

// DayKeyFor picks the day a parsed report is filed under.
func (s *reportService) DayKeyFor(parsed *report.ParsedReport) string {
	return domain.ResolveDayKey(parsed.Date, s.now(), s.loc)
}

// SaveUserReport records the submission for dayKey and updates the user's
// pending task. The two writes are independent merges: re-applying the
// same report is idempotent, and a failure of the second write leaves the
// first in place.
func (s *reportService) SaveUserReport(ctx context.Context, identity entity.Identity, parsed *report.ParsedReport, dayKey string) error {
	now := s.now()

	dailyReport := &entity.DailyReport{
		UserID:    identity.UserID,
		Username:  identity.Username,
		Date:      dayKey,
		Summary:   parsed.Summary,
		Pending:   parsed.Pending,
		Reason:    parsed.Reason,
		GitPush:   parsed.GitPush,
		Status:    entity.ReportStatusFor(parsed.Pending),
		CreatedAt: now,
	}

	if err := s.dm.Report().Merge(ctx, dailyReport); err != nil {
		return wrapStoreErr("save daily report", err)
	}

	switch entity.TaskStatusFor(parsed.Pending) {
	case entity.TaskPending:
		task := &entity.PendingTask{
			UserID:           identity.UserID,
			Username:         identity.Username,
			Task:             parsed.Pending,
			Reason:           parsed.Reason,
			LastDateReported: dayKey,
			Status:           entity.TaskPending,
		}
		if err := s.dm.PendingTask().MarkPending(ctx, task); err != nil {
			return wrapStoreErr("save pending task", err)
		}
	default:
		if err := s.dm.PendingTask().MarkCompleted(ctx, identity.UserID, now); err != nil {
			return wrapStoreErr("complete pending task", err)
		}
	}

	logger.Info("report saved", "user", identity.UserID, "day", dayKey, "status", dailyReport.Status)
	return nil
}

// wrapStoreErr makes sure a persistence failure can be matched with
// domain.ErrStoreUnavailable regardless of which repository produced it.
func wrapStoreErr(action string, err error) error {
	if errors.Is(err, domain.ErrStoreUnavailable) {
		return fmt.Errorf("failed to %s: %w", action, err)
	}
	return fmt.Errorf("failed to %s: %w: %w", action, domain.ErrStoreUnavailable, err)
}
