package mocks

import (
	"github.com/stretchr/testify/mock"

	"retail-churn-analytics/internal/models"
)

// MockClientInterface является моком для redis.ClientInterface интерфейса
type MockClientInterface struct {
	mock.Mock
}

// SaveSnapshot мок для SaveSnapshot
func (m *MockClientInterface) SaveSnapshot(snapshot *models.AnalysisSnapshot) error {
	args := m.Called(snapshot)
	return args.Error(0)
}

// GetSnapshot мок для GetSnapshot
func (m *MockClientInterface) GetSnapshot() (*models.AnalysisSnapshot, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AnalysisSnapshot), args.Error(1)
}

// Close мок для Close
func (m *MockClientInterface) Close() error {
	args := m.Called()
	return args.Error(0)
}
