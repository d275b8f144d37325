package utils

import (
	"sync"
	"time"
)

// Metrics содержит метрики приложения
type Metrics struct {
	mu sync.RWMutex

	// Метрики запросов
	TotalRequests   int64
	FailedRequests  int64
	RequestLatency  time.Duration
	AverageLatency  time.Duration
	LastRequestTime time.Time

	// Метрики оплат
	PaymentsRecorded     int64
	PaymentsDeleted      int64
	LastPaymentOperation time.Time

	// Метрики напоминаний
	RemindersSent   int64
	RemindersFailed int64
	LastReminder    time.Time

	// Метрики обхода задолженностей
	SweepCount        int64
	LastSweepTime     time.Time
	StudentsSwept     int
	StudentsInArrears int
	TotalArrears      int64

	// Метрики ошибок
	ErrorCount    int64
	LastErrorTime time.Time
	ErrorTypes    map[string]int64
}

var (
	metrics     *Metrics
	metricsOnce sync.Once
)

// GetMetrics возвращает экземпляр метрик
func GetMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = &Metrics{
			ErrorTypes: make(map[string]int64),
		}
	})
	return metrics
}

// RecordRequest записывает метрики запроса
func (m *Metrics) RecordRequest(duration time.Duration, failed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.TotalRequests++
	m.RequestLatency += duration
	m.AverageLatency = m.RequestLatency / time.Duration(m.TotalRequests)
	m.LastRequestTime = time.Now()

	if failed {
		m.FailedRequests++
	}
}

// RecordPaymentOperation записывает метрики операции с оплатой
func (m *Metrics) RecordPaymentOperation(operation string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LastPaymentOperation = time.Now()

	if err != nil {
		m.recordErrorLocked(err)
		return
	}

	switch operation {
	case "create":
		m.PaymentsRecorded++
	case "delete":
		m.PaymentsDeleted++
	}
}

// RecordReminder записывает метрики отправки напоминания
func (m *Metrics) RecordReminder(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LastReminder = time.Now()

	if err != nil {
		m.RemindersFailed++
		m.recordErrorLocked(err)
		return
	}
	m.RemindersSent++
}

// RecordSweep записывает метрики одного обхода задолженностей
func (m *Metrics) RecordSweep(swept, inArrears int, totalArrears int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SweepCount++
	m.LastSweepTime = time.Now()
	m.StudentsSwept = swept
	m.StudentsInArrears = inArrears
	m.TotalArrears = totalArrears
}

// RecordError записывает метрики ошибки
func (m *Metrics) RecordError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.recordErrorLocked(err)
}

// recordErrorLocked обновляет счетчики ошибок; вызывается под мьютексом
func (m *Metrics) recordErrorLocked(err error) {
	m.ErrorCount++
	m.LastErrorTime = time.Now()
	m.ErrorTypes[err.Error()]++
}
