package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"retail-churn-analytics/internal/models"
	storagemocks "retail-churn-analytics/internal/storage/mocks"
)

func TestDatasetService_GenerateInMemory(t *testing.T) {
	service := NewDatasetService()

	summary, err := service.Generate(50, 10, 200, 42)
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, 50, summary.TotalCustomers)
	assert.Equal(t, 10, summary.TotalProducts)
	assert.Equal(t, 200, summary.TotalTransactions)

	customers, products, transactions, ok := service.Dataset()
	require.True(t, ok)
	assert.Len(t, customers, 50)
	assert.Len(t, products, 10)
	assert.Len(t, transactions, 200)
}

func TestDatasetService_GenerateValidatesSizes(t *testing.T) {
	service := NewDatasetService()

	_, err := service.Generate(0, 10, 200, 42)
	require.Error(t, err)
	_, err = service.Generate(50, -1, 200, 42)
	require.Error(t, err)
	_, err = service.Generate(50, 10, 0, 42)
	require.Error(t, err)
}

func TestDatasetService_GeneratePersists(t *testing.T) {
	repo := new(storagemocks.MockDatasetRepository)
	repo.On("SaveDataset", mock.AnythingOfType("[]models.Customer"),
		mock.AnythingOfType("[]models.Product"),
		mock.AnythingOfType("[]models.TransactionRecord")).Return(nil)

	service := NewDatasetServiceWithRepository(repo)
	_, err := service.Generate(20, 5, 50, 42)
	require.NoError(t, err)

	repo.AssertNumberOfCalls(t, "SaveDataset", 1)
}

func TestDatasetService_GeneratePersistError(t *testing.T) {
	repo := new(storagemocks.MockDatasetRepository)
	repo.On("SaveDataset", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("disk full"))

	service := NewDatasetServiceWithRepository(repo)
	_, err := service.Generate(20, 5, 50, 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to persist dataset")
}

func TestDatasetService_RestoreWithoutRepository(t *testing.T) {
	service := NewDatasetService()

	restored, err := service.Restore()
	require.NoError(t, err)
	assert.False(t, restored)
}

func TestDatasetService_RestoreEmptyStore(t *testing.T) {
	repo := new(storagemocks.MockDatasetRepository)
	repo.On("GetCustomers").Return([]models.Customer{}, nil)

	service := NewDatasetServiceWithRepository(repo)
	restored, err := service.Restore()
	require.NoError(t, err)
	assert.False(t, restored)

	repo.AssertNotCalled(t, "GetProducts")
}

func TestDatasetService_RestoreLoadsDataset(t *testing.T) {
	storedCustomers := []models.Customer{{CustomerID: "CUST-0001"}}
	storedProducts := []models.Product{{ProductID: "PROD-0001", Price: 10, Cost: 5}}
	storedTransactions := []models.TransactionRecord{{
		TransactionID: "TXN-000001", CustomerID: "CUST-0001", ProductID: "PROD-0001",
		Quantity: 1, TotalAmount: 10,
	}}

	repo := new(storagemocks.MockDatasetRepository)
	repo.On("GetCustomers").Return(storedCustomers, nil)
	repo.On("GetProducts").Return(storedProducts, nil)
	repo.On("GetTransactions").Return(storedTransactions, nil)

	service := NewDatasetServiceWithRepository(repo)
	restored, err := service.Restore()
	require.NoError(t, err)
	assert.True(t, restored)

	customers, products, transactions, ok := service.Dataset()
	require.True(t, ok)
	assert.Equal(t, storedCustomers, customers)
	assert.Equal(t, storedProducts, products)
	assert.Equal(t, storedTransactions, transactions)
}

func TestDatasetService_RestoreError(t *testing.T) {
	repo := new(storagemocks.MockDatasetRepository)
	repo.On("GetCustomers").Return(nil, errors.New("db locked"))

	service := NewDatasetServiceWithRepository(repo)
	_, err := service.Restore()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load customers")
}

func TestDatasetService_DatasetEmpty(t *testing.T) {
	service := NewDatasetService()

	_, _, _, ok := service.Dataset()
	assert.False(t, ok)

	_, ok = service.Summary()
	assert.False(t, ok)
}

func TestDatasetService_Clear(t *testing.T) {
	repo := new(storagemocks.MockDatasetRepository)
	repo.On("SaveDataset", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	repo.On("ClearDataset").Return(nil)

	service := NewDatasetServiceWithRepository(repo)
	_, err := service.Generate(20, 5, 50, 42)
	require.NoError(t, err)

	require.NoError(t, service.Clear())
	_, _, _, ok := service.Dataset()
	assert.False(t, ok)
	repo.AssertCalled(t, "ClearDataset")
}

func TestDatasetService_SummaryAfterGenerate(t *testing.T) {
	service := NewDatasetService()
	_, err := service.Generate(20, 5, 50, 42)
	require.NoError(t, err)

	summary, ok := service.Summary()
	require.True(t, ok)
	assert.Equal(t, 20, summary.TotalCustomers)
	assert.Greater(t, summary.TotalRevenue, 0.0)
}
