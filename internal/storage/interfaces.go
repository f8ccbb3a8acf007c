package storage

import (
	"time"

	"retail-churn-analytics/internal/models"
)

// DatasetRepository определяет интерфейс для работы с набором данных в хранилище
type DatasetRepository interface {
	// SaveDataset атомарно заменяет сохраненный набор данных
	SaveDataset(customers []models.Customer, products []models.Product,
		transactions []models.TransactionRecord) error

	// GetCustomers получает всех клиентов из БД
	GetCustomers() ([]models.Customer, error)

	// GetProducts получает все товары из БД
	GetProducts() ([]models.Product, error)

	// GetTransactions получает все транзакции из БД
	GetTransactions() ([]models.TransactionRecord, error)

	// SaveRiskScores сохраняет оценки риска оттока одного запуска
	SaveRiskScores(runID string, completedAt time.Time, scores []models.RiskScoreRow) error

	// GetRiskScores получает оценки риска по идентификатору запуска
	GetRiskScores(runID string) ([]models.RiskScoreRow, error)

	// ClearDataset удаляет набор данных и все оценки риска из БД
	ClearDataset() error
}
