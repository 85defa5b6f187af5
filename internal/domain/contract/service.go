package contract

//go:generate mockgen -source=service.go -destination=../../../mocks/service_mock.go -package=mocks

import (
	"context"

	"github.com/diegoclair/daily-report-bot/internal/domain/entity"
	"github.com/diegoclair/daily-report-bot/internal/domain/report"
)

type ReportService interface {
	SaveUserReport(ctx context.Context, identity entity.Identity, parsed *report.ParsedReport, dayKey string) error
	DayKeyFor(parsed *report.ParsedReport) string
}

// Job is a unit of scheduled work.
type Job interface {
	Run(ctx context.Context) error
}
