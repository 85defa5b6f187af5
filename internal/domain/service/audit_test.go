package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/daily-report-bot/internal/domain"
	"github.com/diegoclair/daily-report-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testRoster = []entity.Member{
	{ID: "UA", Name: "Asad"},
	{ID: "UB", Name: "Bilal"},
	{ID: "UC", Name: "Chand"},
}

func Test_auditJob_Run_Store(t *testing.T) {
	ctx := context.Background()
	auditAt := time.Date(2025, 10, 26, 21, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		reports []*entity.DailyReport
		want    string
	}{
		{
			name: "Should list missing members in roster order",
			reports: []*entity.DailyReport{
				{UserID: "UA", Username: "Asad", Date: "2025-10-26", Pending: "none", Status: entity.ReportComplete},
			},
			want: "📅 Daily Report Check (2025-10-26)\n\n" +
				"⚠️ Missing reports:\n" +
				"• Bilal please submit your report.\n" +
				"• Chand please submit your report.\n",
		},
		{
			name: "Should congratulate when everyone reported",
			reports: []*entity.DailyReport{
				{UserID: "UC", Username: "Chand", Date: "2025-10-26", Status: entity.ReportComplete},
				{UserID: "UA", Username: "Asad", Date: "2025-10-26", Status: entity.ReportComplete},
				{UserID: "UB", Username: "Bilal", Date: "2025-10-26", Status: entity.ReportPending, Pending: "tests"},
			},
			want: "📅 Daily Report Check (2025-10-26)\n\n" +
				"✅ All members submitted report. Nice work team 👏\n",
		},
		{
			name: "Should carry forward yesterday's pending work",
			reports: []*entity.DailyReport{
				{UserID: "UA", Username: "Asad", Date: "2025-10-26", Status: entity.ReportComplete},
				{UserID: "UB", Username: "Bilal", Date: "2025-10-26", Status: entity.ReportComplete},
				{UserID: "UC", Username: "Chand", Date: "2025-10-26", Status: entity.ReportComplete},
				{UserID: "UA", Username: "Asad", Date: "2025-10-25", Status: entity.ReportPending, Pending: "write docs"},
				{UserID: "UB", Username: "Bilal", Date: "2025-10-25", Status: entity.ReportComplete, Pending: "none"},
			},
			want: "📅 Daily Report Check (2025-10-26)\n\n" +
				"✅ All members submitted report. Nice work team 👏\n" +
				"\n⏳ Still pending from yesterday:\n" +
				"• Asad: yesterday pending \"write docs\"\n" +
				"\nPlease close this today.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			dm := newTestStore(t)
			for _, r := range tt.reports {
				require.NoError(t, dm.Report().Merge(ctx, r))
			}

			m.mockNotifier.EXPECT().Notify(gomock.Any(), tt.want).Return(nil).Times(1)

			job := newAuditJob(dm, m.mockNotifier, testRoster, time.UTC, fixedClock(auditAt))
			assert.NoError(t, job.Run(ctx))
		})
	}
}

func Test_auditJob_Run_UsesConfiguredLocation(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	// 20:00 UTC on the 26th is already the 27th in UTC+5
	loc := time.FixedZone("PKT", 5*60*60)
	now := time.Date(2025, 10, 26, 20, 0, 0, 0, time.UTC)

	m.mockReportRepo.EXPECT().ListByDay(gomock.Any(), "2025-10-27").Return(nil, nil).Times(1)
	m.mockReportRepo.EXPECT().ListByDayAndStatus(gomock.Any(), "2025-10-26", entity.ReportPending).Return(nil, nil).Times(1)
	m.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	job := newAuditJob(m.mockDataManager, m.mockNotifier, nil, loc, fixedClock(now))
	assert.NoError(t, job.Run(context.Background()))
}

func Test_auditJob_Run_Errors(t *testing.T) {
	auditAt := time.Date(2025, 3, 1, 21, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		buildMock func(m allMocks)
		wantErr   error
	}{
		{
			name: "Should abort when today's reports cannot be read",
			buildMock: func(m allMocks) {
				m.mockReportRepo.EXPECT().ListByDay(gomock.Any(), "2025-03-01").Return(nil, assert.AnError).Times(1)
			},
			wantErr: domain.ErrStoreUnavailable,
		},
		{
			name: "Should abort when yesterday's reports cannot be read",
			buildMock: func(m allMocks) {
				m.mockReportRepo.EXPECT().ListByDay(gomock.Any(), "2025-03-01").Return(nil, nil).Times(1)
				m.mockReportRepo.EXPECT().ListByDayAndStatus(gomock.Any(), "2025-02-28", entity.ReportPending).Return(nil, assert.AnError).Times(1)
			},
			wantErr: domain.ErrStoreUnavailable,
		},
		{
			name: "Should return notifier failure",
			buildMock: func(m allMocks) {
				m.mockReportRepo.EXPECT().ListByDay(gomock.Any(), "2025-03-01").Return(nil, nil).Times(1)
				m.mockReportRepo.EXPECT().ListByDayAndStatus(gomock.Any(), "2025-02-28", entity.ReportPending).Return(nil, nil).Times(1)
				m.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(assert.AnError).Times(1)
			},
			wantErr: domain.ErrNotifierFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()
			tt.buildMock(m)

			job := newAuditJob(m.mockDataManager, m.mockNotifier, testRoster, time.UTC, fixedClock(auditAt))
			err := job.Run(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func Test_missingMembers(t *testing.T) {
	submitted := []*entity.DailyReport{{UserID: "UA"}, {UserID: "UX"}}

	got := missingMembers(testRoster, submitted)
	assert.Equal(t, []entity.Member{{ID: "UB", Name: "Bilal"}, {ID: "UC", Name: "Chand"}}, got)
	assert.Empty(t, missingMembers(testRoster[:1], submitted))
}
