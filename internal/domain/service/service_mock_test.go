package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/daily-report-bot/internal/database"
	"github.com/diegoclair/daily-report-bot/internal/domain/contract"
	"github.com/diegoclair/daily-report-bot/mocks"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager     *mocks.MockDataManager
	mockReportRepo      *mocks.MockReportRepo
	mockPendingTaskRepo *mocks.MockPendingTaskRepo
	mockNotifier        *mocks.MockNotifier
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	reportRepo := mocks.NewMockReportRepo(ctrl)
	dm.EXPECT().Report().Return(reportRepo).AnyTimes()

	pendingTaskRepo := mocks.NewMockPendingTaskRepo(ctrl)
	dm.EXPECT().PendingTask().Return(pendingTaskRepo).AnyTimes()

	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	m = allMocks{
		mockDataManager:     dm,
		mockReportRepo:      reportRepo,
		mockPendingTaskRepo: pendingTaskRepo,
		mockNotifier:        mocks.NewMockNotifier(ctrl),
	}
	return
}

// newTestStore returns a DataManager over an in-memory document store.
func newTestStore(t *testing.T) contract.DataManager {
	t.Helper()

	db := database.SetupTestDB(t)
	t.Cleanup(func() { database.CleanupTestDB(t, db) })
	return database.NewInstance(db)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
