package ml

import (
	"math"
	"math/rand"

	"retail-churn-analytics/internal/models"
)

// StratifiedSplit делит выборку на обучающую и тестовую части, сохраняя
// долю классов. Метка с единственным классом — ошибка: стратификация и
// AUC в этом случае не определены.
func StratifiedSplit(X [][]float64, y []int, trainRatio float64, seed int64) (
	XTrain, XTest [][]float64, yTrain, yTest []int, err error) {

	var classIdx [2][]int
	for i, label := range y {
		if label != 0 && label != 1 {
			return nil, nil, nil, nil, &models.DegenerateInputError{
				Stage: "training", Reason: "labels must be binary",
			}
		}
		classIdx[label] = append(classIdx[label], i)
	}
	if len(classIdx[0]) == 0 {
		return nil, nil, nil, nil, &models.SingleClassLabelError{Class: 1}
	}
	if len(classIdx[1]) == 0 {
		return nil, nil, nil, nil, &models.SingleClassLabelError{Class: 0}
	}

	rng := rand.New(rand.NewSource(seed))
	var trainIdx, testIdx []int
	for class := 0; class < 2; class++ {
		idx := classIdx[class]
		if len(idx) < 2 {
			return nil, nil, nil, nil, &models.DegenerateInputError{
				Stage:  "training",
				Reason: "each class needs at least 2 examples for a stratified split",
			}
		}
		shuffled := make([]int, len(idx))
		copy(shuffled, idx)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		testCount := int(math.Round(float64(len(idx)) * (1 - trainRatio)))
		if testCount < 1 {
			testCount = 1
		}
		if testCount >= len(idx) {
			testCount = len(idx) - 1
		}
		testIdx = append(testIdx, shuffled[:testCount]...)
		trainIdx = append(trainIdx, shuffled[testCount:]...)
	}

	rng.Shuffle(len(trainIdx), func(i, j int) { trainIdx[i], trainIdx[j] = trainIdx[j], trainIdx[i] })
	rng.Shuffle(len(testIdx), func(i, j int) { testIdx[i], testIdx[j] = testIdx[j], testIdx[i] })

	XTrain = make([][]float64, len(trainIdx))
	yTrain = make([]int, len(trainIdx))
	for k, i := range trainIdx {
		XTrain[k] = X[i]
		yTrain[k] = y[i]
	}
	XTest = make([][]float64, len(testIdx))
	yTest = make([]int, len(testIdx))
	for k, i := range testIdx {
		XTest[k] = X[i]
		yTest[k] = y[i]
	}
	return XTrain, XTest, yTrain, yTest, nil
}
