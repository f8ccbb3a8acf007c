package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"retail-churn-analytics/internal/models"
)

// MockDatasetRepository представляет мок репозитория набора данных для тестов
type MockDatasetRepository struct {
	mock.Mock
}

func (m *MockDatasetRepository) SaveDataset(customers []models.Customer, products []models.Product,
	transactions []models.TransactionRecord) error {
	args := m.Called(customers, products, transactions)
	return args.Error(0)
}

func (m *MockDatasetRepository) GetCustomers() ([]models.Customer, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Customer), args.Error(1)
}

func (m *MockDatasetRepository) GetProducts() ([]models.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockDatasetRepository) GetTransactions() ([]models.TransactionRecord, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TransactionRecord), args.Error(1)
}

func (m *MockDatasetRepository) SaveRiskScores(runID string, completedAt time.Time,
	scores []models.RiskScoreRow) error {
	args := m.Called(runID, completedAt, scores)
	return args.Error(0)
}

func (m *MockDatasetRepository) GetRiskScores(runID string) ([]models.RiskScoreRow, error) {
	args := m.Called(runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RiskScoreRow), args.Error(1)
}

func (m *MockDatasetRepository) ClearDataset() error {
	args := m.Called()
	return args.Error(0)
}
