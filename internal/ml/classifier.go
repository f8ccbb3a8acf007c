package ml

// Classifier определяет единый контракт бинарного классификатора.
// Fit обучает модель, Predict возвращает жесткие метки 0/1,
// PredictProba — вероятность класса 1 для каждой строки.
type Classifier interface {
	Fit(X [][]float64, y []int)
	Predict(X [][]float64) []int
	PredictProba(X [][]float64) []float64
}

// ImportanceReporter реализуется моделями, которые умеют оценивать
// важность признаков (древесные ансамбли). Линейная модель важности
// не сообщает.
type ImportanceReporter interface {
	FeatureImportances() []float64
}
