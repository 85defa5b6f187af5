package contract

//go:generate mockgen -source=repo.go -destination=../../../mocks/repo_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/diegoclair/daily-report-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Report() ReportRepo
	PendingTask() PendingTaskRepo
}

// ReportRepo defines the contract for the reports/{day}/users collection
type ReportRepo interface {
	Merge(ctx context.Context, report *entity.DailyReport) error
	Get(ctx context.Context, day, userID string) (*entity.DailyReport, error)
	ListByDay(ctx context.Context, day string) ([]*entity.DailyReport, error)
	ListByDayAndStatus(ctx context.Context, day string, status entity.ReportStatus) ([]*entity.DailyReport, error)
}

// PendingTaskRepo defines the contract for the pending_tasks collection
type PendingTaskRepo interface {
	MarkPending(ctx context.Context, task *entity.PendingTask) error
	MarkCompleted(ctx context.Context, userID string, completedAt time.Time) error
	Get(ctx context.Context, userID string) (*entity.PendingTask, error)
	ListByStatus(ctx context.Context, status entity.TaskStatus) ([]*entity.PendingTask, error)
	ListUnreminded(ctx context.Context, status entity.TaskStatus) ([]*entity.PendingTask, error)
	MarkReminded(ctx context.Context, userID string, remindedAt time.Time) error
}
