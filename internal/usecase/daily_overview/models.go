package daily_overview

import "time"

// Venue параметры заведения для отчёта
type Venue struct {
	UTCOffset    time.Duration // фиксированный сдвиг, летнее время не учитывается
	PoolSynonyms []string      // первые слова имени, означающие пул (регистр не важен)
}

// Request запрос отчёта за календарный день заведения
type Request struct {
	Date time.Time // используется только год, месяц и день
}
