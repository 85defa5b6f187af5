package service

import (
	"time"

	"github.com/diegoclair/daily-report-bot/internal/domain"
	"github.com/diegoclair/daily-report-bot/internal/domain/contract"
	"github.com/diegoclair/daily-report-bot/internal/domain/entity"
)

const (
	reminderJobName = "reminder"
	auditJobName    = "audit"
)

type Options struct {
	Location     *time.Location
	ReminderTime string
	AuditTime    string
	RemindOnce   bool
	Roster       []entity.Member
	// Now defaults to time.Now
	Now func() time.Time
}

type Instance struct {
	Report    *reportService
	Reminder  *reminderJob
	Audit     *auditJob
	Scheduler *scheduler
}

func NewInstance(dm contract.DataManager, notifier contract.Notifier, opts Options) (*Instance, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.ReminderTime == "" {
		opts.ReminderTime = domain.DefaultReminderTime
	}
	if opts.AuditTime == "" {
		opts.AuditTime = domain.DefaultAuditTime
	}

	svc := &Instance{
		Report:    newReportService(dm, opts.Location, opts.Now),
		Reminder:  newReminderJob(dm, notifier, opts.Now, opts.RemindOnce),
		Audit:     newAuditJob(dm, notifier, opts.Roster, opts.Location, opts.Now),
		Scheduler: newScheduler(opts.Location, opts.Now),
	}

	if err := svc.Scheduler.Register(reminderJobName, opts.ReminderTime, svc.Reminder); err != nil {
		return nil, err
	}
	if err := svc.Scheduler.Register(auditJobName, opts.AuditTime, svc.Audit); err != nil {
		return nil, err
	}

	return svc, nil
}
