package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/daily-report-bot/internal/domain"
	"github.com/diegoclair/daily-report-bot/internal/domain/contract"
	"github.com/diegoclair/daily-report-bot/internal/domain/entity"
)

type reportRepo struct {
	docs *documentStore
}

func newReportRepo(db dbConn) contract.ReportRepo {
	return &reportRepo{docs: newDocumentStore(db)}
}

func reportRef(day, userID string) DocRef {
	return DocRef{Collection: domain.ReportsPath(day), ID: userID}
}

// Merge writes every report field at reports/{date}/users/{userID}.
func (r *reportRepo) Merge(ctx context.Context, report *entity.DailyReport) error {
	return r.docs.Set(ctx, reportRef(report.Date, report.UserID), map[string]interface{}{
		"username":  report.Username,
		"date":      report.Date,
		"summary":   report.Summary,
		"pending":   report.Pending,
		"reason":    report.Reason,
		"gitPush":   report.GitPush,
		"status":    string(report.Status),
		"createdAt": report.CreatedAt,
	})
}

func (r *reportRepo) Get(ctx context.Context, day, userID string) (*entity.DailyReport, error) {
	doc, err := r.docs.Get(ctx, reportRef(day, userID))
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}

	return decodeReport(*doc)
}

func (r *reportRepo) ListByDay(ctx context.Context, day string) ([]*entity.DailyReport, error) {
	docs, err := r.docs.List(ctx, domain.ReportsPath(day))
	if err != nil {
		return nil, err
	}

	return decodeReports(docs)
}

func (r *reportRepo) ListByDayAndStatus(ctx context.Context, day string, status entity.ReportStatus) ([]*entity.DailyReport, error) {
	docs, err := r.docs.Where(ctx, domain.ReportsPath(day), Filter{Field: "status", Value: string(status)})
	if err != nil {
		return nil, err
	}

	return decodeReports(docs)
}

func decodeReports(docs []Document) ([]*entity.DailyReport, error) {
	reports := make([]*entity.DailyReport, 0, len(docs))
	for _, doc := range docs {
		report, err := decodeReport(doc)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func decodeReport(doc Document) (*entity.DailyReport, error) {
	report := &entity.DailyReport{}
	if err := doc.DataTo(report); err != nil {
		return nil, storeError(fmt.Sprintf("decode report %s", doc.ID), err)
	}
	report.UserID = doc.ID
	if report.Username == "" {
		report.Username = doc.ID
	}
	return report, nil
}
