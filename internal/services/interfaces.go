package services

import (
	"time"

	"retail-churn-analytics/config"
	"retail-churn-analytics/internal/models"
)

// AnalysisOptions задает параметры одного запуска конвейера. Опорные
// времена передаются явно: возрастные признаки считаются от
// FeatureReferenceTime, recency в RFM — от RFMReferenceTime. Нулевое
// FeatureReferenceTime заменяется текущим временем, нулевое
// RFMReferenceTime — максимальной датой транзакции в данных.
type AnalysisOptions struct {
	FeatureReferenceTime time.Time
	RFMReferenceTime     time.Time
	ChurnThresholdDays   int
	ClusterCount         int
	TrainSplitRatio      float64
	RandomSeed           int64
	MediumRiskCutoff     float64
	HighRiskCutoff       float64

	// Progress, если задан, вызывается после каждой стадии
	Progress func(stage string)
}

// OptionsFromConfig собирает параметры запуска из конфигурации
func OptionsFromConfig(cfg *config.AnalysisConfig) AnalysisOptions {
	return AnalysisOptions{
		ChurnThresholdDays: cfg.ChurnThresholdDays,
		ClusterCount:       cfg.ClusterCount,
		TrainSplitRatio:    cfg.TrainSplitRatio,
		RandomSeed:         cfg.RandomSeed,
		MediumRiskCutoff:   cfg.MediumRiskCutoff,
		HighRiskCutoff:     cfg.HighRiskCutoff,
	}
}

// DatasetService определяет интерфейс для работы с текущим набором данных
type DatasetService interface {
	// Generate генерирует демонстрационный набор данных и делает его текущим
	Generate(nCustomers, nProducts, nTransactions int, seed int64) (*models.DataSummary, error)

	// Restore загружает сохраненный набор данных из хранилища
	Restore() (bool, error)

	// Dataset возвращает текущий набор данных и признак его наличия
	Dataset() ([]models.Customer, []models.Product, []models.TransactionRecord, bool)

	// Summary возвращает сводку по текущему набору данных
	Summary() (*models.DataSummary, bool)

	// Clear удаляет текущий набор данных из памяти и хранилища
	Clear() error
}

// AnalysisService определяет интерфейс аналитического конвейера
type AnalysisService interface {
	// RunAnalysis прогоняет полный конвейер над входными таблицами
	RunAnalysis(customers []models.Customer, products []models.Product,
		transactions []models.TransactionRecord, opts AnalysisOptions) (*models.AnalysisSnapshot, error)

	// LatestSnapshot возвращает результат последнего успешного запуска
	LatestSnapshot() (*models.AnalysisSnapshot, bool)
}
