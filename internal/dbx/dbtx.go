// Package dbx holds the minimal database/sql surface the repositories are
// written against. Both *sql.DB and *sql.Tx satisfy DBTX, so repository code
// does not care whether it runs inside a transaction.
package dbx

import (
	"context"
	"database/sql"
)

type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
