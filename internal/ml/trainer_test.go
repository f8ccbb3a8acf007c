package ml

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retail-churn-analytics/internal/models"
)

// trainerFixture строит линейно разделимую таблицу: класс определяется
// знаком первого признака.
func trainerFixture() *models.FeatureTable {
	table := &models.FeatureTable{
		Columns: []string{"signal", "noise"},
	}
	for i := 0; i < 20; i++ {
		label := 0
		signal := -1.0 - float64(i%10)*0.1
		if i >= 10 {
			label = 1
			signal = 1.0 + float64(i%10)*0.1
		}
		table.CustomerIDs = append(table.CustomerIDs, fmt.Sprintf("CUST-%04d", i+1))
		table.Rows = append(table.Rows, []float64{signal, float64(i % 3)})
		table.Labels = append(table.Labels, label)
	}
	return table
}

func TestTrain_ThreeModelFamilies(t *testing.T) {
	result, err := Train(trainerFixture(), 0.8, 42)
	require.NoError(t, err)

	require.Len(t, result.Models, 3)
	assert.Equal(t, ModelRandomForest, result.Models[0].Name)
	assert.Equal(t, ModelGradientBoosting, result.Models[1].Name)
	assert.Equal(t, ModelLogisticRegression, result.Models[2].Name)

	for _, m := range result.Models {
		assert.Len(t, m.Probabilities, 4)
		assert.Len(t, m.Predictions, 4)
		for _, p := range m.Probabilities {
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 1.0)
		}
	}
}

func TestTrain_SeparableDataPerfectAUC(t *testing.T) {
	result, err := Train(trainerFixture(), 0.8, 42)
	require.NoError(t, err)

	for _, m := range result.Models {
		assert.InDelta(t, 1.0, m.AUC, 1e-9, "model %s", m.Name)
	}
}

func TestTrain_BestByAUCTieGoesToFirst(t *testing.T) {
	// На разделимых данных все три модели дают AUC 1.0, побеждает
	// обученная первой
	result, err := Train(trainerFixture(), 0.8, 42)
	require.NoError(t, err)

	assert.Equal(t, ModelRandomForest, result.BestName)
	require.NotNil(t, result.Best)
}

func TestTrain_ComparisonTable(t *testing.T) {
	result, err := Train(trainerFixture(), 0.8, 42)
	require.NoError(t, err)

	require.Len(t, result.Comparison, 3)
	bestCount := 0
	for _, row := range result.Comparison {
		if row.Best {
			bestCount++
			assert.Equal(t, result.BestName, row.Model)
		}
	}
	assert.Equal(t, 1, bestCount)
}

func TestTrain_TreeModelsReportImportances(t *testing.T) {
	result, err := Train(trainerFixture(), 0.8, 42)
	require.NoError(t, err)

	assert.Len(t, result.Models[0].Importances, 2)
	assert.Len(t, result.Models[1].Importances, 2)
	assert.Nil(t, result.Models[2].Importances)
}

func TestTrain_SingleClassLabels(t *testing.T) {
	table := trainerFixture()
	for i := range table.Labels {
		table.Labels[i] = 1
	}

	_, err := Train(table, 0.8, 42)
	var singleClass *models.SingleClassLabelError
	require.ErrorAs(t, err, &singleClass)
}

func TestTrain_KeepsScalerForScoring(t *testing.T) {
	result, err := Train(trainerFixture(), 0.8, 42)
	require.NoError(t, err)

	require.NotNil(t, result.Scaler)
	assert.Equal(t, []string{"signal", "noise"}, result.FeatureNames)
}
