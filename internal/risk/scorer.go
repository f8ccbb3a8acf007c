package risk

import (
	"retail-churn-analytics/internal/ml"
	"retail-churn-analytics/internal/models"
)

// Score прогоняет всю выборку через лучшую модель и раскладывает
// вероятности по фиксированным уровням риска. Таблица заполняется и
// масштабируется тем же скейлером, что и при обучении.
func Score(table *models.FeatureTable, training *ml.TrainingResult,
	mediumCutoff, highCutoff float64) ([]models.RiskScoreRow, error) {

	X, err := training.Scaler.Transform(table)
	if err != nil {
		return nil, err
	}
	probs := training.Best.PredictProba(X)

	rows := make([]models.RiskScoreRow, len(probs))
	for i, p := range probs {
		rows[i] = models.RiskScoreRow{
			CustomerID:       table.CustomerIDs[i],
			ChurnProbability: p,
			RiskLevel:        TierFor(p, mediumCutoff, highCutoff),
		}
	}
	return rows, nil
}

// TierFor возвращает уровень риска для вероятности. Интервалы
// полуоткрытые: граничное значение относится к верхнему уровню.
func TierFor(probability, mediumCutoff, highCutoff float64) string {
	switch {
	case probability >= highCutoff:
		return models.RiskHigh
	case probability >= mediumCutoff:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}
