package service

import (
	"context"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/diegoclair/daily-report-bot/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_newScheduler(t *testing.T) {
	s := newScheduler(nil, time.Now)

	require.NotNil(t, s)
	assert.Equal(t, time.Local, s.loc)
	assert.Empty(t, s.jobs)
	assert.False(t, s.running)
}

func Test_nextDailyFire(t *testing.T) {
	karachi := time.FixedZone("PKT", 5*60*60)
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	type args struct {
		hour, minute int
		after        time.Time
		loc          *time.Location
	}
	tests := []struct {
		name string
		args args
		want time.Time
	}{
		{
			name: "Should return today if time hasn't passed",
			args: args{hour: 10, minute: 0, after: time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC), loc: time.UTC},
			want: time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "Should return tomorrow if time has passed",
			args: args{hour: 10, minute: 0, after: time.Date(2025, 1, 6, 11, 0, 0, 0, time.UTC), loc: time.UTC},
			want: time.Date(2025, 1, 7, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "Should be strictly after the previous fire",
			args: args{hour: 21, minute: 0, after: time.Date(2025, 1, 6, 21, 0, 0, 0, time.UTC), loc: time.UTC},
			want: time.Date(2025, 1, 7, 21, 0, 0, 0, time.UTC),
		},
		{
			name: "Should cross month boundary",
			args: args{hour: 10, minute: 30, after: time.Date(2025, 1, 31, 23, 0, 0, 0, time.UTC), loc: time.UTC},
			want: time.Date(2025, 2, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name: "Should use the configured location",
			// 06:00 UTC is 11:00 in Karachi, so 10:00 local already passed
			args: args{hour: 10, minute: 0, after: time.Date(2025, 1, 6, 6, 0, 0, 0, time.UTC), loc: karachi},
			want: time.Date(2025, 1, 7, 10, 0, 0, 0, karachi),
		},
		{
			name: "Should keep wall clock across DST start",
			args: args{hour: 10, minute: 0, after: time.Date(2025, 3, 8, 12, 0, 0, 0, newYork), loc: newYork},
			want: time.Date(2025, 3, 9, 10, 0, 0, 0, newYork),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextDailyFire(tt.args.hour, tt.args.minute, tt.args.after, tt.args.loc)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func Test_parseClock(t *testing.T) {
	tests := []struct {
		clock      string
		wantHour   int
		wantMinute int
		wantErr    bool
	}{
		{clock: "10:00", wantHour: 10},
		{clock: "21:05", wantHour: 21, wantMinute: 5},
		{clock: "9:30", wantHour: 9, wantMinute: 30},
		{clock: "24:00", wantErr: true},
		{clock: "10:60", wantErr: true},
		{clock: "1000", wantErr: true},
		{clock: "ab:cd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.clock, func(t *testing.T) {
			hour, minute, err := parseClock(tt.clock)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHour, hour)
			assert.Equal(t, tt.wantMinute, minute)
		})
	}
}

func Test_scheduler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newScheduler(time.UTC, time.Now)

	assert.NoError(t, s.Register("reminder", "10:00", mocks.NewMockJob(ctrl)))
	assert.Error(t, s.Register("audit", "9pm", mocks.NewMockJob(ctrl)))
	assert.Len(t, s.jobs, 1)
}

func Test_scheduler_nextDue(t *testing.T) {
	ctrl := gomock.NewController(t)
	now := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)
	s := newScheduler(time.UTC, fixedClock(now))

	require.NoError(t, s.Register("reminder", "10:00", mocks.NewMockJob(ctrl)))
	require.NoError(t, s.Register("audit", "21:00", mocks.NewMockJob(ctrl)))
	require.NoError(t, s.Register("standup", "10:00", mocks.NewMockJob(ctrl)))
	for _, j := range s.jobs {
		j.next = nextDailyFire(j.hour, j.minute, now, s.loc)
	}

	fireAt, due := s.nextDue()
	assert.True(t, time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC).Equal(fireAt))
	assert.Equal(t, []string{"reminder", "standup"}, jobNames(due))
}

func Test_scheduler_FiresJobAndReschedules(t *testing.T) {
	ctrl := gomock.NewController(t)

	// the fake clock sits just before 10:00 so the first timer is short
	fireAt := time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)
	s := newScheduler(time.UTC, fixedClock(fireAt.Add(-20*time.Millisecond)))

	ran := make(chan struct{}, 1)
	job := mocks.NewMockJob(ctrl)
	job.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		ran <- struct{}{}
		return nil
	}).Times(1)

	require.NoError(t, s.Register("reminder", "10:00", job))
	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run")
	}

	assert.Eventually(t, func() bool {
		next, _ := s.nextDue()
		return next.Equal(fireAt.AddDate(0, 0, 1))
	}, time.Second, 5*time.Millisecond)
}

func Test_scheduler_StopCancelsJobContext(t *testing.T) {
	ctrl := gomock.NewController(t)

	fireAt := time.Date(2025, 1, 6, 21, 0, 0, 0, time.UTC)
	s := newScheduler(time.UTC, fixedClock(fireAt.Add(-10*time.Millisecond)))

	started := make(chan struct{})
	cancelled := make(chan struct{})
	job := mocks.NewMockJob(ctrl)
	job.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		close(cancelled)
		return ctx.Err()
	}).Times(1)

	require.NoError(t, s.Register("audit", "21:00", job))
	s.Start()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not start")
	}

	s.Stop()
	assert.False(t, s.running)

	select {
	case <-cancelled:
	case <-time.After(2 * time.Second):
		t.Fatal("job context was not cancelled")
	}
}

func Test_scheduler_StartStopIdempotent(t *testing.T) {
	s := newScheduler(time.UTC, time.Now)

	s.Stop()
	s.Start()
	s.Start()
	assert.True(t, s.running)
	s.Stop()
	s.Stop()
	assert.False(t, s.running)
}

func TestNewInstance(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	svc, err := NewInstance(m.mockDataManager, m.mockNotifier, Options{Location: time.UTC})
	require.NoError(t, err)
	require.NotNil(t, svc.Report)
	require.NotNil(t, svc.Reminder)
	require.NotNil(t, svc.Audit)
	require.Len(t, svc.Scheduler.jobs, 2)
	assert.Equal(t, 10, svc.Scheduler.jobs[0].hour)
	assert.Equal(t, 21, svc.Scheduler.jobs[1].hour)

	_, err = NewInstance(m.mockDataManager, m.mockNotifier, Options{ReminderTime: "bad"})
	assert.Error(t, err)
}
