package churn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retail-churn-analytics/internal/models"
)

func selectionFixture() *models.FeatureTable {
	nan := math.NaN()
	return &models.FeatureTable{
		Columns:     []string{"useful", "mostly_missing", "constant"},
		CustomerIDs: []string{"CUST-0001", "CUST-0002", "CUST-0003", "CUST-0004"},
		Labels:      []int{0, 1, 0, 1},
		Rows: [][]float64{
			{1, nan, 7},
			{2, nan, 7},
			{3, nan, 7},
			{4, 5, 7},
		},
	}
}

func TestSelectFeatures_DropsMostlyMissingColumn(t *testing.T) {
	selected, dropped := SelectFeatures(selectionFixture(), MissingThreshold, VarianceThreshold)

	// 3 пропуска из 4 — выше порога 0.5
	assert.Contains(t, dropped, "mostly_missing")
	assert.NotContains(t, selected.Columns, "mostly_missing")
}

func TestSelectFeatures_DropsConstantColumn(t *testing.T) {
	selected, dropped := SelectFeatures(selectionFixture(), MissingThreshold, VarianceThreshold)

	assert.Contains(t, dropped, "constant")
	assert.Equal(t, []string{"useful"}, selected.Columns)
}

func TestSelectFeatures_KeepsRowAlignment(t *testing.T) {
	table := selectionFixture()
	selected, _ := SelectFeatures(table, MissingThreshold, VarianceThreshold)

	require.Len(t, selected.Rows, 4)
	for i, row := range selected.Rows {
		require.Len(t, row, 1)
		assert.Equal(t, float64(i+1), row[0])
	}
	assert.Equal(t, table.CustomerIDs, selected.CustomerIDs)
	assert.Equal(t, table.Labels, selected.Labels)
}

func TestSelectFeatures_MissingAtThresholdKept(t *testing.T) {
	// Ровно половина пропусков порог не превышает
	nan := math.NaN()
	table := &models.FeatureTable{
		Columns:     []string{"half_missing"},
		CustomerIDs: []string{"CUST-0001", "CUST-0002", "CUST-0003", "CUST-0004"},
		Labels:      []int{0, 0, 1, 1},
		Rows:        [][]float64{{nan}, {nan}, {10}, {20}},
	}

	selected, dropped := SelectFeatures(table, MissingThreshold, VarianceThreshold)
	assert.Empty(t, dropped)
	assert.Equal(t, []string{"half_missing"}, selected.Columns)
}

func TestSelectFeatures_EmptyTable(t *testing.T) {
	table := &models.FeatureTable{
		Columns: []string{"a", "b"},
	}

	selected, dropped := SelectFeatures(table, MissingThreshold, VarianceThreshold)
	assert.Empty(t, selected.Rows)
	assert.Empty(t, dropped)
	assert.Equal(t, []string{"a", "b"}, selected.Columns)
}
