package categoryconfig

import (
	"github.com/pawfinder/PF-SchedulingService/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
