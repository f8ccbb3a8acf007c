package redis

import (
	"retail-churn-analytics/internal/models"
)

// ClientInterface определяет интерфейс кэша результатов анализа.
// Это позволяет легко создавать моки для тестирования.
// Реализуется типом Client
type ClientInterface interface {
	// SaveSnapshot кэширует последний результат анализа
	SaveSnapshot(snapshot *models.AnalysisSnapshot) error

	// GetSnapshot возвращает закэшированный результат анализа
	GetSnapshot() (*models.AnalysisSnapshot, error)

	// Close закрывает соединение
	Close() error
}
