package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/daily-report-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db              *DB
	reportRepo      contract.ReportRepo
	pendingTaskRepo contract.PendingTaskRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.reportRepo = newReportRepo(i.db.conn)
	i.pendingTaskRepo = newPendingTaskRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		reportRepo:      newReportRepo(db),
		pendingTaskRepo: newPendingTaskRepo(db),
	}
}

// Report returns the daily report repository
func (i *instance) Report() contract.ReportRepo {
	return i.reportRepo
}

// PendingTask returns the pending task repository
func (i *instance) PendingTask() contract.PendingTaskRepo {
	return i.pendingTaskRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		// already inside a transaction
		return fn(i)
	}

	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return storeError("begin transaction", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return storeError("commit transaction", err)
	}
	return nil
}
