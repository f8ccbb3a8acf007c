package mocks

import (
	"github.com/stretchr/testify/mock"

	"retail-churn-analytics/internal/models"
	"retail-churn-analytics/internal/services"
)

// MockAnalysisService является моком для services.AnalysisService интерфейса
type MockAnalysisService struct {
	mock.Mock
}

// RunAnalysis мок для RunAnalysis
func (m *MockAnalysisService) RunAnalysis(customers []models.Customer, products []models.Product,
	transactions []models.TransactionRecord, opts services.AnalysisOptions) (*models.AnalysisSnapshot, error) {
	args := m.Called(customers, products, transactions, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AnalysisSnapshot), args.Error(1)
}

// LatestSnapshot мок для LatestSnapshot
func (m *MockAnalysisService) LatestSnapshot() (*models.AnalysisSnapshot, bool) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*models.AnalysisSnapshot), args.Bool(1)
}
