package reservation

import (
	"github.com/golab368/REPL-backend-tenis/pkg/dbmetrics"
)

// Переиспользуем интерфейс executor из dbmetrics: репозиторий одинаково
// работает поверх *sql.DB, *dbmetrics.DB и открытой транзакции
type DBExecutor = dbmetrics.DBExecutor
