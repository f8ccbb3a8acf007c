package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retail-churn-analytics/internal/models"
)

func splitFixture() ([][]float64, []int) {
	X := make([][]float64, 10)
	y := make([]int, 10)
	for i := range X {
		X[i] = []float64{float64(i)}
		if i >= 5 {
			y[i] = 1
		}
	}
	return X, y
}

func TestStratifiedSplit_Proportions(t *testing.T) {
	X, y := splitFixture()
	XTrain, XTest, yTrain, yTest, err := StratifiedSplit(X, y, 0.8, 42)
	require.NoError(t, err)

	assert.Len(t, XTrain, 8)
	assert.Len(t, XTest, 2)
	assert.Len(t, yTrain, 8)
	assert.Len(t, yTest, 2)

	// Стратификация сохраняет долю классов в обеих частях
	assert.Equal(t, 4, countLabel(yTrain, 1))
	assert.Equal(t, 1, countLabel(yTest, 1))
}

func TestStratifiedSplit_NoOverlap(t *testing.T) {
	X, y := splitFixture()
	XTrain, XTest, _, _, err := StratifiedSplit(X, y, 0.8, 42)
	require.NoError(t, err)

	seen := make(map[float64]bool)
	for _, row := range XTrain {
		seen[row[0]] = true
	}
	for _, row := range XTest {
		assert.False(t, seen[row[0]], "sample %v in both splits", row[0])
	}
	assert.Len(t, seen, 8)
}

func TestStratifiedSplit_Deterministic(t *testing.T) {
	X, y := splitFixture()
	_, XTest1, _, yTest1, err := StratifiedSplit(X, y, 0.8, 42)
	require.NoError(t, err)
	_, XTest2, _, yTest2, err := StratifiedSplit(X, y, 0.8, 42)
	require.NoError(t, err)

	assert.Equal(t, XTest1, XTest2)
	assert.Equal(t, yTest1, yTest2)
}

func TestStratifiedSplit_SingleClass(t *testing.T) {
	X := [][]float64{{1}, {2}, {3}}

	var singleClass *models.SingleClassLabelError
	_, _, _, _, err := StratifiedSplit(X, []int{1, 1, 1}, 0.8, 42)
	require.ErrorAs(t, err, &singleClass)

	_, _, _, _, err = StratifiedSplit(X, []int{0, 0, 0}, 0.8, 42)
	require.ErrorAs(t, err, &singleClass)
}

func TestStratifiedSplit_TooFewPerClass(t *testing.T) {
	X := [][]float64{{1}, {2}, {3}, {4}}
	y := []int{0, 1, 1, 1}

	_, _, _, _, err := StratifiedSplit(X, y, 0.8, 42)
	var degenerate *models.DegenerateInputError
	require.ErrorAs(t, err, &degenerate)
	assert.Equal(t, "training", degenerate.Stage)
}

func TestStratifiedSplit_NonBinaryLabels(t *testing.T) {
	X := [][]float64{{1}, {2}}
	_, _, _, _, err := StratifiedSplit(X, []int{0, 2}, 0.8, 42)

	var degenerate *models.DegenerateInputError
	require.ErrorAs(t, err, &degenerate)
}

func TestStratifiedSplit_TestNeverEmpty(t *testing.T) {
	// Даже при высокой доле обучения каждая часть получает хотя бы один
	// пример на класс
	X := [][]float64{{1}, {2}, {3}, {4}}
	y := []int{0, 0, 1, 1}

	_, XTest, _, yTest, err := StratifiedSplit(X, y, 0.99, 42)
	require.NoError(t, err)
	assert.Len(t, XTest, 2)
	assert.ElementsMatch(t, []int{0, 1}, yTest)
}

func countLabel(labels []int, label int) int {
	n := 0
	for _, l := range labels {
		if l == label {
			n++
		}
	}
	return n
}
