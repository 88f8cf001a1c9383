package barber

import (
	"github.com/m04kA/SMC-BarberAgenda/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
