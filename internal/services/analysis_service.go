package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"retail-churn-analytics/internal/churn"
	"retail-churn-analytics/internal/logger"
	"retail-churn-analytics/internal/ml"
	"retail-churn-analytics/internal/models"
	"retail-churn-analytics/internal/preprocess"
	"retail-churn-analytics/internal/redis"
	"retail-churn-analytics/internal/rfm"
	"retail-churn-analytics/internal/risk"
	"retail-churn-analytics/internal/segmentation"
	"retail-churn-analytics/internal/storage"
)

const serviceName = "analytics-service"

// AnalysisServiceImpl реализует интерфейс AnalysisService
type AnalysisServiceImpl struct {
	cache redis.ClientInterface     // Опциональный кэш для дашборда
	store storage.DatasetRepository // Опциональное хранилище оценок риска

	mu     sync.RWMutex
	latest *models.AnalysisSnapshot
}

// NewAnalysisService создает новый сервис анализа
func NewAnalysisService() AnalysisService {
	return &AnalysisServiceImpl{}
}

// NewAnalysisServiceWithCache создает сервис анализа с кэшированием
// снапшота в Redis
func NewAnalysisServiceWithCache(cache redis.ClientInterface) AnalysisService {
	return &AnalysisServiceImpl{cache: cache}
}

// NewAnalysisServiceWithDependencies создает сервис анализа с кэшем и
// сохранением оценок риска в SQLite. Любая зависимость может быть nil.
func NewAnalysisServiceWithDependencies(cache redis.ClientInterface, store storage.DatasetRepository) AnalysisService {
	return &AnalysisServiceImpl{cache: cache, store: store}
}

// RunAnalysis прогоняет полный конвейер: очистка, признаки, RFM,
// кластеризация, признаки оттока, обучение моделей, скоринг и сводка.
// Стадии выполняются строго последовательно, ошибка стадии прерывает
// запуск без попыток деградации до предупреждения.
func (s *AnalysisServiceImpl) RunAnalysis(customers []models.Customer, products []models.Product,
	transactions []models.TransactionRecord, opts AnalysisOptions) (*models.AnalysisSnapshot, error) {

	runID := "run_" + uuid.New().String()

	featureRef := opts.FeatureReferenceTime
	if featureRef.IsZero() {
		featureRef = time.Now()
	}

	customersClean, productsClean, transactionsClean, err := preprocess.CleanTables(customers, products, transactions)
	if err != nil {
		return nil, s.fail(runID, "cleaning", err)
	}
	logger.LogEvent(logger.EventDataCleaned, serviceName, "pipeline", map[string]interface{}{
		"run_id":       runID,
		"customers":    len(customersClean),
		"products":     len(productsClean),
		"transactions": len(transactionsClean),
	})
	s.progress(opts, "cleaning")

	customerFeatures := preprocess.BuildCustomerFeatures(customersClean, transactionsClean, featureRef)
	productFeatures := preprocess.BuildProductFeatures(productsClean, transactionsClean)
	logger.LogEvent(logger.EventFeaturesBuilt, serviceName, "pipeline", map[string]interface{}{
		"run_id":            runID,
		"customer_features": len(customerFeatures),
		"product_features":  len(productFeatures),
	})
	s.progress(opts, "features")

	rfmRows, err := rfm.Analyze(transactionsClean, opts.RFMReferenceTime)
	if err != nil {
		return nil, s.fail(runID, "rfm", err)
	}
	logger.LogEvent(logger.EventRFMCompleted, serviceName, "pipeline", map[string]interface{}{
		"run_id": runID,
		"rows":   len(rfmRows),
	})
	s.progress(opts, "rfm")

	clusters, err := segmentation.Segment(customerFeatures, opts.ClusterCount, opts.RandomSeed)
	if err != nil {
		return nil, s.fail(runID, "segmentation", err)
	}
	logger.LogEvent(logger.EventSegmentationComplete, serviceName, "pipeline", map[string]interface{}{
		"run_id":   runID,
		"clusters": opts.ClusterCount,
	})
	s.progress(opts, "segmentation")

	churnFeatures := churn.EngineerFeatures(customerFeatures, transactionsClean, opts.ChurnThresholdDays)
	logger.LogEvent(logger.EventChurnFeaturesBuilt, serviceName, "pipeline", map[string]interface{}{
		"run_id":          runID,
		"selected":        len(churnFeatures.Table.Columns),
		"dropped_columns": len(churnFeatures.Dropped),
	})
	s.progress(opts, "churn_features")

	training, err := ml.Train(churnFeatures.Table, opts.TrainSplitRatio, opts.RandomSeed)
	if err != nil {
		return nil, s.fail(runID, "training", err)
	}
	logger.LogEvent(logger.EventModelsTrained, serviceName, "pipeline", map[string]interface{}{
		"run_id":     runID,
		"models":     len(training.Models),
		"best_model": training.BestName,
	})
	s.progress(opts, "training")

	riskScores, err := risk.Score(churnFeatures.Table, training, opts.MediumRiskCutoff, opts.HighRiskCutoff)
	if err != nil {
		return nil, s.fail(runID, "scoring", err)
	}
	logger.LogEvent(logger.EventScoringCompleted, serviceName, "pipeline", map[string]interface{}{
		"run_id": runID,
		"scored": len(riskScores),
	})
	s.progress(opts, "scoring")

	insights := risk.BuildInsights(customerFeatures, rfmRows, clusters, churnFeatures.Rows, riskScores)

	snapshot := &models.AnalysisSnapshot{
		RunID:            runID,
		CompletedAt:      time.Now(),
		DataSummary:      preprocess.BuildDataSummary(customersClean, productsClean, transactionsClean),
		CustomerFeatures: customerFeatures,
		ProductFeatures:  productFeatures,
		RFM:              rfmRows,
		Clusters:         clusters,
		ChurnFeatures:    churnFeatures.Rows,
		RiskScores:       riskScores,
		ModelComparison:  training.Comparison,
		BestModel:        training.BestName,
		Insights:         insights,
		Recommendations:  risk.BuildRecommendations(insights),
	}
	s.progress(opts, "insights")

	s.mu.Lock()
	s.latest = snapshot
	s.mu.Unlock()

	if s.cache != nil {
		if err := s.cache.SaveSnapshot(snapshot); err == nil {
			logger.LogEvent(logger.EventSnapshotCached, serviceName, "redis", map[string]interface{}{
				"run_id": runID,
			})
		}
	}

	if s.store != nil {
		if err := s.store.SaveRiskScores(runID, snapshot.CompletedAt, riskScores); err == nil {
			logger.LogEvent(logger.EventRiskScoresSaved, serviceName, "sqlite", map[string]interface{}{
				"run_id": runID,
				"rows":   len(riskScores),
			})
		}
	}

	return snapshot, nil
}

// LatestSnapshot возвращает результат последнего успешного запуска.
// При пустой памяти процесса пробует кэш.
func (s *AnalysisServiceImpl) LatestSnapshot() (*models.AnalysisSnapshot, bool) {
	s.mu.RLock()
	latest := s.latest
	s.mu.RUnlock()
	if latest != nil {
		return latest, true
	}

	if s.cache != nil {
		if snapshot, err := s.cache.GetSnapshot(); err == nil && snapshot != nil {
			return snapshot, true
		}
	}
	return nil, false
}

func (s *AnalysisServiceImpl) progress(opts AnalysisOptions, stage string) {
	if opts.Progress != nil {
		opts.Progress(stage)
	}
}

func (s *AnalysisServiceImpl) fail(runID, stage string, err error) error {
	logger.LogEvent(logger.EventAnalysisFailed, serviceName, "pipeline", map[string]interface{}{
		"run_id": runID,
		"stage":  stage,
		"error":  err.Error(),
	})
	return fmt.Errorf("stage %s: %w", stage, err)
}
