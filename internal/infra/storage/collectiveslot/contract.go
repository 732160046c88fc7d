package collectiveslot

import (
	"context"
	"database/sql"

	"github.com/pawfinder/PF-SchedulingService/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interfaces so the repository works both
// with a plain *sql.DB and with the metrics wrapper.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner is implemented by handles that can open transactions.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
