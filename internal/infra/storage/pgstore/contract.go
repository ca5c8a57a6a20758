package pgstore

import "github.com/m04kA/SMC-CareSlotService/pkg/dbmetrics"

// DBExecutor is satisfied by *sql.DB and *dbmetrics.DB.
type DBExecutor = dbmetrics.DBExecutor
