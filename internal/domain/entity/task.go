package entity

import "time"

type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskCompleted TaskStatus = "completed"
)

// PendingTask is the single open item tracked per user at
// pending_tasks/{userID}. It is overwritten by every submission.
type PendingTask struct {
	UserID           string     `json:"-"`
	Username         string     `json:"username"`
	Task             string     `json:"task"`
	Reason           string     `json:"reason"`
	LastDateReported string     `json:"lastDateReported"`
	Status           TaskStatus `json:"status"`
	RemindedToday    bool       `json:"remindedToday"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
	LastReminderAt   *time.Time `json:"lastReminderAt,omitempty"`
}

// TaskStatusFor maps a submission's pending text to the task transition:
// unresolved work reopens the task, "none" completes it.
func TaskStatusFor(pending string) TaskStatus {
	if HasPendingWork(pending) {
		return TaskPending
	}
	return TaskCompleted
}
