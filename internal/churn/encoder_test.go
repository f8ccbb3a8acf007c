package churn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retail-churn-analytics/internal/models"
)

func TestFitCategoryEncoder_SortedVocabulary(t *testing.T) {
	rows := []models.CustomerFeatureRow{
		{CustomerID: "CUST-0001", Location: "US", AgeGroup: "26-35", IncomeLevel: "High"},
		{CustomerID: "CUST-0002", Location: "DE", AgeGroup: "36-45", IncomeLevel: "Low"},
		{CustomerID: "CUST-0003", Location: "US", AgeGroup: "26-35", IncomeLevel: "Medium"},
	}

	encoder := FitCategoryEncoder(rows)
	names := encoder.ColumnNames()

	assert.Equal(t, []string{
		"location_DE", "location_US",
		"age_group_26-35", "age_group_36-45",
		"income_level_High", "income_level_Low", "income_level_Medium",
	}, names)
}

func TestEncodeRow_Indicators(t *testing.T) {
	rows := []models.CustomerFeatureRow{
		{CustomerID: "CUST-0001", Location: "US", AgeGroup: "26-35", IncomeLevel: "High"},
		{CustomerID: "CUST-0002", Location: "DE", AgeGroup: "36-45", IncomeLevel: "Low"},
	}
	encoder := FitCategoryEncoder(rows)

	encoded := encoder.EncodeRow(rows[0])
	require.Len(t, encoded, len(encoder.ColumnNames()))
	// location_DE, location_US, age_group_26-35, age_group_36-45,
	// income_level_High, income_level_Low
	assert.Equal(t, []float64{0, 1, 1, 0, 1, 0}, encoded)
}

func TestEncodeRow_UnknownCategory(t *testing.T) {
	rows := []models.CustomerFeatureRow{
		{CustomerID: "CUST-0001", Location: "US", AgeGroup: "26-35", IncomeLevel: "High"},
	}
	encoder := FitCategoryEncoder(rows)

	// Категория вне словаря дает нулевые индикаторы, а не новый столбец
	encoded := encoder.EncodeRow(models.CustomerFeatureRow{
		CustomerID: "CUST-9999", Location: "FR", AgeGroup: "56+", IncomeLevel: "Low",
	})
	assert.Equal(t, []float64{0, 0, 0}, encoded)
}

func TestFitCategoryEncoder_EmptyValuesSkipped(t *testing.T) {
	rows := []models.CustomerFeatureRow{
		{CustomerID: "CUST-0001", Location: "US"},
		{CustomerID: "CUST-0002"},
	}
	encoder := FitCategoryEncoder(rows)

	assert.Equal(t, []string{"location_US"}, encoder.ColumnNames())
}
