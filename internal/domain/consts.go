package domain

// DayKeyLayout is the zero-padded calendar day used to bucket reports.
const DayKeyLayout = "2006-01-02"

// Document collections
const (
	ReportsCollection      = "reports"
	ReportUsersCollection  = "users"
	PendingTasksCollection = "pending_tasks"
)

// NoPendingWork is the sentinel a user writes when nothing is left open.
const NoPendingWork = "none"

// GitPushAffirmatives are the words that mark a Git Push answer as yes.
var GitPushAffirmatives = []string{"yes", "true", "pushed"}

// Default schedule, HH:MM in the configured timezone
const (
	DefaultReminderTime = "10:00"
	DefaultAuditTime    = "21:00"
)
