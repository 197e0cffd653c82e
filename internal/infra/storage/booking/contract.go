package booking

import (
	"github.com/m04kA/EDU-SchedulingService/pkg/dbmetrics"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
// Реализуется *sql.DB, *dbmetrics.DB и транзакциями
type DBExecutor = dbmetrics.DBExecutor
