package appointment

import (
	"github.com/m04kA/SMC-BarberAgenda/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}
