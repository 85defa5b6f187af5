package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/diegoclair/daily-report-bot/internal/domain"
	"github.com/diegoclair/daily-report-bot/internal/domain/contract"
	"github.com/diegoclair/daily-report-bot/internal/domain/entity"
	"github.com/diegoclair/daily-report-bot/internal/logger"
)

type reminderJob struct {
	dm         contract.DataManager
	notifier   contract.Notifier
	now        func() time.Time
	remindOnce bool
}

func newReminderJob(dm contract.DataManager, notifier contract.Notifier, now func() time.Time, remindOnce bool) *reminderJob {
	return &reminderJob{
		dm:         dm,
		notifier:   notifier,
		now:        now,
		remindOnce: remindOnce,
	}
}

// Run announces every open task in one notice and marks the tasks as
// reminded. Bookkeeping happens even when the notice could not be sent;
// reminders are delivered at most once per run and never retried.
func (j *reminderJob) Run(ctx context.Context) error {
	tasks, err := j.selectTasks(ctx)
	if err != nil {
		return wrapStoreErr("list pending tasks", err)
	}

	if len(tasks) == 0 {
		logger.Info("no pending tasks to remind")
		return nil
	}

	sort.SliceStable(tasks, func(a, b int) bool {
		if tasks[a].Username == tasks[b].Username {
			return tasks[a].UserID < tasks[b].UserID
		}
		return tasks[a].Username < tasks[b].Username
	})

	notifyErr := j.notifier.Notify(ctx, composeReminder(tasks))
	if notifyErr != nil {
		logger.Error("failed to send reminder", "error", notifyErr, "tasks", len(tasks))
	}

	remindedAt := j.now()
	markErr := j.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		for _, task := range tasks {
			if err := tx.PendingTask().MarkReminded(ctx, task.UserID, remindedAt); err != nil {
				return err
			}
		}
		return nil
	})
	if markErr != nil {
		markErr = wrapStoreErr("mark tasks reminded", markErr)
	}

	if notifyErr != nil {
		notifyErr = wrapNotifierErr("send reminder", notifyErr)
	}

	if err := errors.Join(notifyErr, markErr); err != nil {
		return err
	}

	logger.Info("reminder sent", "tasks", len(tasks))
	return nil
}

func (j *reminderJob) selectTasks(ctx context.Context) ([]*entity.PendingTask, error) {
	if j.remindOnce {
		return j.dm.PendingTask().ListUnreminded(ctx, entity.TaskPending)
	}
	return j.dm.PendingTask().ListByStatus(ctx, entity.TaskPending)
}

func composeReminder(tasks []*entity.PendingTask) string {
	var b strings.Builder
	b.WriteString("☀️ Good morning team!\nThese tasks are still pending from yesterday:\n\n")
	for _, task := range tasks {
		reason := task.Reason
		if strings.TrimSpace(reason) == "" {
			reason = "N/A"
		}
		fmt.Fprintf(&b, "• %s: \"%s\" (reason: %s)\n", task.Username, task.Task, reason)
	}
	b.WriteString("\nPlease complete these before tonight's report ✅")
	return b.String()
}

func wrapNotifierErr(action string, err error) error {
	if errors.Is(err, domain.ErrNotifierFailure) {
		return fmt.Errorf("failed to %s: %w", action, err)
	}
	return fmt.Errorf("failed to %s: %w: %w", action, domain.ErrNotifierFailure, err)
}
