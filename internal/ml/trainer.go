package ml

import (
	"retail-churn-analytics/internal/models"
)

// Имена моделей в сравнительной таблице
const (
	ModelRandomForest       = "Random Forest"
	ModelGradientBoosting   = "Gradient Boosting"
	ModelLogisticRegression = "Logistic Regression"
)

// TrainingResult — неизменяемый результат стадии обучения: обученные
// модели, сравнительная таблица, лучшая модель и скейлер, которым
// обязан пользоваться последующий скоринг. Никакого скрытого состояния
// между обучением и скорингом нет.
type TrainingResult struct {
	Models       []models.ModelResult
	Comparison   []models.ModelComparisonRow
	BestName     string
	Best         Classifier
	Scaler       *Scaler
	FeatureNames []string
}

// Train стандартизует таблицу признаков, делит ее стратифицированно,
// обучает независимые модели трех семейств и выбирает лучшую по AUC на
// отложенной выборке. При равенстве AUC побеждает обученная первой.
func Train(table *models.FeatureTable, trainRatio float64, seed int64) (*TrainingResult, error) {
	scaler := &Scaler{}
	scaler.Fit(table)
	X, err := scaler.Transform(table)
	if err != nil {
		return nil, err
	}

	XTrain, XTest, yTrain, yTest, err := StratifiedSplit(X, table.Labels, trainRatio, seed)
	if err != nil {
		return nil, err
	}

	classifiers := []struct {
		name  string
		model Classifier
	}{
		{ModelRandomForest, NewRandomForest(seed)},
		{ModelGradientBoosting, NewGradientBoosting(seed)},
		{ModelLogisticRegression, NewLogisticRegression()},
	}

	result := &TrainingResult{
		Scaler:       scaler,
		FeatureNames: scaler.FeatureNames(),
	}

	bestAUC := -1.0
	for _, c := range classifiers {
		c.model.Fit(XTrain, yTrain)

		probs := c.model.PredictProba(XTest)
		preds := c.model.Predict(XTest)

		modelResult := models.ModelResult{
			Name:          c.name,
			Accuracy:      Accuracy(yTest, preds),
			AUC:           AUC(yTest, probs),
			Predictions:   preds,
			Probabilities: probs,
			TestLabels:    yTest,
		}
		if reporter, ok := c.model.(ImportanceReporter); ok {
			modelResult.Importances = reporter.FeatureImportances()
		}
		result.Models = append(result.Models, modelResult)

		// Строгое "больше": при равенстве остается первая модель
		if modelResult.AUC > bestAUC {
			bestAUC = modelResult.AUC
			result.BestName = c.name
			result.Best = c.model
		}
	}

	for _, m := range result.Models {
		result.Comparison = append(result.Comparison, models.ModelComparisonRow{
			Model:    m.Name,
			Accuracy: m.Accuracy,
			AUC:      m.AUC,
			Best:     m.Name == result.BestName,
		})
	}

	return result, nil
}
