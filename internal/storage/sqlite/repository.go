package sqlite

import (
	"time"

	"retail-churn-analytics/internal/models"
	"retail-churn-analytics/internal/storage"
)

// Repository реализует интерфейс DatasetRepository для SQLite
type Repository struct {
	storage *SQLiteStorage
}

// NewRepository создает новый репозиторий SQLite
func NewRepository(storage *SQLiteStorage) storage.DatasetRepository {
	return &Repository{storage: storage}
}

// SaveDataset атомарно заменяет сохраненный набор данных
func (r *Repository) SaveDataset(customers []models.Customer, products []models.Product,
	transactions []models.TransactionRecord) error {
	return r.storage.SaveDataset(customers, products, transactions)
}

// GetCustomers получает всех клиентов из БД
func (r *Repository) GetCustomers() ([]models.Customer, error) {
	return r.storage.GetCustomers()
}

// GetProducts получает все товары из БД
func (r *Repository) GetProducts() ([]models.Product, error) {
	return r.storage.GetProducts()
}

// GetTransactions получает все транзакции из БД
func (r *Repository) GetTransactions() ([]models.TransactionRecord, error) {
	return r.storage.GetTransactions()
}

// SaveRiskScores сохраняет оценки риска оттока одного запуска
func (r *Repository) SaveRiskScores(runID string, completedAt time.Time,
	scores []models.RiskScoreRow) error {
	return r.storage.SaveRiskScores(runID, completedAt, scores)
}

// GetRiskScores получает оценки риска по идентификатору запуска
func (r *Repository) GetRiskScores(runID string) ([]models.RiskScoreRow, error) {
	return r.storage.GetRiskScores(runID)
}

// ClearDataset удаляет набор данных и все оценки риска из БД
func (r *Repository) ClearDataset() error {
	return r.storage.ClearDataset()
}
