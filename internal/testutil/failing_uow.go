package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/gestemps/internal/db"
)

// FailingExecUoW is a UnitOfWork whose transaction fails the FailOn-th
// ExecContext call (1-based) with Err. Reads are never counted. It lets
// tests check that a partially written run is rolled back.
type FailingExecUoW struct {
	DB     *sql.DB
	FailOn int
	Err    error
}

func (u *FailingExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := fn(ctx, &failingExec{DBTX: tx, failOn: u.FailOn, err: u.Err}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type failingExec struct {
	db.DBTX
	calls  int
	failOn int
	err    error
}

func (f *failingExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.calls++
	if f.calls == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
