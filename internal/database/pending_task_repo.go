package database

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/daily-report-bot/internal/domain"
	"github.com/diegoclair/daily-report-bot/internal/domain/contract"
	"github.com/diegoclair/daily-report-bot/internal/domain/entity"
)

type pendingTaskRepo struct {
	docs *documentStore
}

func newPendingTaskRepo(db dbConn) contract.PendingTaskRepo {
	return &pendingTaskRepo{docs: newDocumentStore(db)}
}

func taskRef(userID string) DocRef {
	return DocRef{Collection: domain.PendingTasksCollection, ID: userID}
}

// MarkPending overwrites the user's open task and clears the reminder flag.
func (r *pendingTaskRepo) MarkPending(ctx context.Context, task *entity.PendingTask) error {
	return r.docs.Set(ctx, taskRef(task.UserID), map[string]interface{}{
		"username":         task.Username,
		"task":             task.Task,
		"reason":           task.Reason,
		"lastDateReported": task.LastDateReported,
		"status":           string(entity.TaskPending),
		"remindedToday":    false,
	})
}

// MarkCompleted only touches the status fields, the last task and reason
// stay on the record.
func (r *pendingTaskRepo) MarkCompleted(ctx context.Context, userID string, completedAt time.Time) error {
	return r.docs.Set(ctx, taskRef(userID), map[string]interface{}{
		"status":      string(entity.TaskCompleted),
		"completedAt": completedAt,
	})
}

func (r *pendingTaskRepo) MarkReminded(ctx context.Context, userID string, remindedAt time.Time) error {
	return r.docs.Set(ctx, taskRef(userID), map[string]interface{}{
		"remindedToday":  true,
		"lastReminderAt": remindedAt,
	})
}

func (r *pendingTaskRepo) Get(ctx context.Context, userID string) (*entity.PendingTask, error) {
	doc, err := r.docs.Get(ctx, taskRef(userID))
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}

	return decodeTask(*doc)
}

func (r *pendingTaskRepo) ListByStatus(ctx context.Context, status entity.TaskStatus) ([]*entity.PendingTask, error) {
	docs, err := r.docs.Where(ctx, domain.PendingTasksCollection, Filter{Field: "status", Value: string(status)})
	if err != nil {
		return nil, err
	}

	return decodeTasks(docs)
}

func (r *pendingTaskRepo) ListUnreminded(ctx context.Context, status entity.TaskStatus) ([]*entity.PendingTask, error) {
	docs, err := r.docs.Where(ctx, domain.PendingTasksCollection,
		Filter{Field: "status", Value: string(status)},
		Filter{Field: "remindedToday", Value: false},
	)
	if err != nil {
		return nil, err
	}

	return decodeTasks(docs)
}

func decodeTasks(docs []Document) ([]*entity.PendingTask, error) {
	tasks := make([]*entity.PendingTask, 0, len(docs))
	for _, doc := range docs {
		task, err := decodeTask(doc)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func decodeTask(doc Document) (*entity.PendingTask, error) {
	task := &entity.PendingTask{}
	if err := doc.DataTo(task); err != nil {
		return nil, storeError(fmt.Sprintf("decode pending task %s", doc.ID), err)
	}
	task.UserID = doc.ID
	if task.Username == "" {
		task.Username = doc.ID
	}
	return task, nil
}
