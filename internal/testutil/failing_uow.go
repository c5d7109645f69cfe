package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/TGO0427/synercore-import-schedule-sub003/internal/db"
)

// FailingUoW is a UnitOfWork that injects Err into one write of the
// transaction so tests can check that nothing before it was committed.
//
// FailOn picks the Nth ExecContext call (counted from 1). FailOnQuery picks
// the first ExecContext whose SQL contains the given text, e.g.
// "INSERT INTO occupancy_log". Reads are never failed.
type FailingUoW struct {
	DB          *sql.DB
	FailOn      int32
	FailOnQuery string
	Err         error
}

func (u *FailingUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failingExec{DBTX: tx, uow: u}
	if err := fn(ctx, wrapped); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type failingExec struct {
	db.DBTX
	uow   *FailingUoW
	count atomic.Int32
	fired atomic.Bool
}

func (f *failingExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	n := f.count.Add(1)
	if f.shouldFail(n, query) {
		return nil, f.uow.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

func (f *failingExec) shouldFail(n int32, query string) bool {
	switch {
	case f.uow.FailOn > 0 && n == f.uow.FailOn:
		return true
	case f.uow.FailOnQuery != "" && strings.Contains(query, f.uow.FailOnQuery):
		return f.fired.CompareAndSwap(false, true)
	default:
		return false
	}
}
