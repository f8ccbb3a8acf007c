package services

import (
	"fmt"
	"sync"

	"retail-churn-analytics/internal/generator"
	"retail-churn-analytics/internal/logger"
	"retail-churn-analytics/internal/models"
	"retail-churn-analytics/internal/preprocess"
	"retail-churn-analytics/internal/storage"
)

// DatasetServiceImpl реализует интерфейс DatasetService. Текущий набор
// данных держится в памяти, репозиторий (если задан) хранит копию между
// перезапусками процесса.
type DatasetServiceImpl struct {
	repo storage.DatasetRepository // Опциональное персистентное хранилище

	mu           sync.RWMutex
	customers    []models.Customer
	products     []models.Product
	transactions []models.TransactionRecord
}

// NewDatasetService создает новый сервис набора данных
func NewDatasetService() DatasetService {
	return &DatasetServiceImpl{}
}

// NewDatasetServiceWithRepository создает сервис набора данных с
// сохранением в SQLite
func NewDatasetServiceWithRepository(repo storage.DatasetRepository) DatasetService {
	return &DatasetServiceImpl{repo: repo}
}

// Generate генерирует демонстрационный набор данных и делает его текущим
func (s *DatasetServiceImpl) Generate(nCustomers, nProducts, nTransactions int, seed int64) (*models.DataSummary, error) {
	if nCustomers <= 0 || nProducts <= 0 || nTransactions <= 0 {
		return nil, fmt.Errorf("dataset sizes must be positive: customers=%d products=%d transactions=%d",
			nCustomers, nProducts, nTransactions)
	}

	gen := generator.NewDatasetGenerator(seed)
	customers, products, transactions := gen.GenerateDataset(nCustomers, nProducts, nTransactions)

	s.mu.Lock()
	s.customers = customers
	s.products = products
	s.transactions = transactions
	s.mu.Unlock()

	if s.repo != nil {
		if err := s.repo.SaveDataset(customers, products, transactions); err != nil {
			return nil, fmt.Errorf("failed to persist dataset: %w", err)
		}
	}

	logger.LogEvent(logger.EventDatasetGenerated, serviceName, "generator", map[string]interface{}{
		"customers":    len(customers),
		"products":     len(products),
		"transactions": len(transactions),
		"seed":         seed,
	})

	summary := preprocess.BuildDataSummary(customers, products, transactions)
	return &summary, nil
}

// Restore загружает сохраненный набор данных из репозитория. Возвращает
// false без ошибки, если репозиторий не задан или хранилище пусто.
func (s *DatasetServiceImpl) Restore() (bool, error) {
	if s.repo == nil {
		return false, nil
	}

	customers, err := s.repo.GetCustomers()
	if err != nil {
		return false, fmt.Errorf("failed to load customers: %w", err)
	}
	if len(customers) == 0 {
		return false, nil
	}

	products, err := s.repo.GetProducts()
	if err != nil {
		return false, fmt.Errorf("failed to load products: %w", err)
	}
	transactions, err := s.repo.GetTransactions()
	if err != nil {
		return false, fmt.Errorf("failed to load transactions: %w", err)
	}

	s.mu.Lock()
	s.customers = customers
	s.products = products
	s.transactions = transactions
	s.mu.Unlock()

	logger.LogEvent(logger.EventDatasetLoaded, serviceName, "sqlite", map[string]interface{}{
		"customers":    len(customers),
		"products":     len(products),
		"transactions": len(transactions),
	})

	return true, nil
}

// Dataset возвращает текущий набор данных и признак его наличия
func (s *DatasetServiceImpl) Dataset() ([]models.Customer, []models.Product, []models.TransactionRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.customers) == 0 || len(s.transactions) == 0 {
		return nil, nil, nil, false
	}
	return s.customers, s.products, s.transactions, true
}

// Summary возвращает сводку по текущему набору данных
func (s *DatasetServiceImpl) Summary() (*models.DataSummary, bool) {
	customers, products, transactions, ok := s.Dataset()
	if !ok {
		return nil, false
	}
	summary := preprocess.BuildDataSummary(customers, products, transactions)
	return &summary, true
}

// Clear удаляет текущий набор данных из памяти и хранилища
func (s *DatasetServiceImpl) Clear() error {
	s.mu.Lock()
	s.customers = nil
	s.products = nil
	s.transactions = nil
	s.mu.Unlock()

	if s.repo != nil {
		if err := s.repo.ClearDataset(); err != nil {
			return fmt.Errorf("failed to clear stored dataset: %w", err)
		}
	}
	return nil
}
