package mocks

import (
	"github.com/stretchr/testify/mock"

	"retail-churn-analytics/internal/models"
)

// MockDatasetService представляет мок сервиса набора данных для тестов
type MockDatasetService struct {
	mock.Mock
}

func (m *MockDatasetService) Generate(nCustomers, nProducts, nTransactions int, seed int64) (*models.DataSummary, error) {
	args := m.Called(nCustomers, nProducts, nTransactions, seed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DataSummary), args.Error(1)
}

func (m *MockDatasetService) Restore() (bool, error) {
	args := m.Called()
	return args.Bool(0), args.Error(1)
}

func (m *MockDatasetService) Dataset() ([]models.Customer, []models.Product, []models.TransactionRecord, bool) {
	args := m.Called()
	var customers []models.Customer
	var products []models.Product
	var transactions []models.TransactionRecord
	if args.Get(0) != nil {
		customers = args.Get(0).([]models.Customer)
	}
	if args.Get(1) != nil {
		products = args.Get(1).([]models.Product)
	}
	if args.Get(2) != nil {
		transactions = args.Get(2).([]models.TransactionRecord)
	}
	return customers, products, transactions, args.Bool(3)
}

func (m *MockDatasetService) Summary() (*models.DataSummary, bool) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*models.DataSummary), args.Bool(1)
}

func (m *MockDatasetService) Clear() error {
	args := m.Called()
	return args.Error(0)
}
