package domain

// Результаты фиксации назначений для метрик.
const (
	CommitResultOK      = "ok"
	CommitResultFailed  = "failed"
	CommitResultDropped = "dropped"
)

// MetricsCollector определяет контракт сбора метрик редактора групп.
type MetricsCollector interface {
	// RecordDrop учитывает завершение перетаскивания с данным итогом.
	RecordDrop(result string)
	// RecordCommit учитывает результат фиксации назначения.
	RecordCommit(result string)
	SetActiveSessions(count int)
}
