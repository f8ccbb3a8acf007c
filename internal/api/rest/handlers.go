package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"retail-churn-analytics/config"
	"retail-churn-analytics/internal/generator"
	"retail-churn-analytics/internal/models"
	"retail-churn-analytics/internal/services"
)

// GenerateDatasetRequest задает размеры генерируемого набора данных.
// Нулевые поля заменяются значениями по умолчанию.
type GenerateDatasetRequest struct {
	Customers    int   `json:"customers"`
	Products     int   `json:"products"`
	Transactions int   `json:"transactions"`
	Seed         int64 `json:"seed"`
}

// RunAnalysisRequest задает необязательные переопределения параметров
// запуска. Отсутствующие поля берутся из конфигурации сервиса.
type RunAnalysisRequest struct {
	ChurnThresholdDays *int     `json:"churn_threshold_days,omitempty"`
	ClusterCount       *int     `json:"cluster_count,omitempty"`
	TrainSplitRatio    *float64 `json:"train_split_ratio,omitempty"`
	RandomSeed         *int64   `json:"random_seed,omitempty"`
}

type Handlers struct {
	datasets services.DatasetService
	analysis services.AnalysisService
	cfg      *config.AnalysisConfig
}

// Создает новые обработчики REST API
func NewHandlers(datasets services.DatasetService, analysis services.AnalysisService,
	cfg *config.AnalysisConfig) *Handlers {
	return &Handlers{
		datasets: datasets,
		analysis: analysis,
		cfg:      cfg,
	}
}

// GenerateDataset генерирует демонстрационный набор данных
// @Summary Сгенерировать набор данных
// @Description Генерирует демонстрационный набор клиентов, товаров и транзакций и делает его текущим. Прежний набор заменяется.
// @Tags dataset
// @Accept json
// @Produce json
// @Param sizes body rest.GenerateDatasetRequest false "Размеры набора"
// @Success 201 {object} models.DataSummary "Сводка по сгенерированному набору"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /dataset/generate [post]
func (h *Handlers) GenerateDataset(c *gin.Context) {
	req := GenerateDatasetRequest{
		Customers:    generator.DefaultCustomers,
		Products:     generator.DefaultProducts,
		Transactions: generator.DefaultTransactions,
		Seed:         42,
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	summary, err := h.datasets.Generate(req.Customers, req.Products, req.Transactions, req.Seed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate dataset"})
		return
	}

	c.JSON(http.StatusCreated, summary)
}

// GetDatasetSummary возвращает сводку по текущему набору данных
// @Summary Получить сводку по набору данных
// @Description Возвращает итоги по текущим таблицам клиентов, товаров и транзакций
// @Tags dataset
// @Accept json
// @Produce json
// @Success 200 {object} models.DataSummary "Сводка по набору"
// @Failure 404 {object} map[string]string "Набор данных не загружен"
// @Router /dataset/summary [get]
func (h *Handlers) GetDatasetSummary(c *gin.Context) {
	summary, ok := h.datasets.Summary()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No dataset loaded"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ClearDataset удаляет текущий набор данных
// @Summary Очистить набор данных
// @Description Удаляет текущий набор данных из памяти и хранилища
// @Tags dataset
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Набор данных очищен"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /dataset [delete]
func (h *Handlers) ClearDataset(c *gin.Context) {
	if err := h.datasets.Clear(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear dataset"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Dataset cleared successfully",
		"clear_storage": true,
	})
}

// RunAnalysis запускает аналитический конвейер над текущим набором данных
// @Summary Запустить анализ
// @Description Прогоняет полный конвейер (очистка, признаки, RFM, кластеризация, обучение моделей, скоринг риска) над текущим набором данных и возвращает снапшот результатов
// @Tags analysis
// @Accept json
// @Produce json
// @Param options body rest.RunAnalysisRequest false "Переопределения параметров"
// @Success 200 {object} models.AnalysisSnapshot "Результаты анализа"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Набор данных не загружен"
// @Failure 422 {object} map[string]string "Данные непригодны для анализа"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /analysis/run [post]
func (h *Handlers) RunAnalysis(c *gin.Context) {
	customers, products, transactions, ok := h.datasets.Dataset()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No dataset loaded"})
		return
	}

	var req RunAnalysisRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	opts := services.OptionsFromConfig(h.cfg)
	if req.ChurnThresholdDays != nil {
		opts.ChurnThresholdDays = *req.ChurnThresholdDays
	}
	if req.ClusterCount != nil {
		opts.ClusterCount = *req.ClusterCount
	}
	if req.TrainSplitRatio != nil {
		opts.TrainSplitRatio = *req.TrainSplitRatio
	}
	if req.RandomSeed != nil {
		opts.RandomSeed = *req.RandomSeed
	}

	snapshot, err := h.analysis.RunAnalysis(customers, products, transactions, opts)
	if err != nil {
		status := http.StatusInternalServerError
		if isUnprocessableInput(err) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// GetSnapshot возвращает результат последнего успешного запуска
// @Summary Получить снапшот анализа
// @Description Возвращает полный снапшот последнего успешного запуска конвейера
// @Tags analysis
// @Accept json
// @Produce json
// @Success 200 {object} models.AnalysisSnapshot "Снапшот анализа"
// @Failure 404 {object} map[string]string "Анализ еще не выполнялся"
// @Router /analysis/snapshot [get]
func (h *Handlers) GetSnapshot(c *gin.Context) {
	snapshot, ok := h.analysis.LatestSnapshot()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No analysis results available"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// GetInsights возвращает сводку итогов последнего анализа
// @Summary Получить бизнес-сводку
// @Description Возвращает агрегированную сводку и рекомендации последнего успешного запуска
// @Tags analysis
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Сводка и рекомендации"
// @Failure 404 {object} map[string]string "Анализ еще не выполнялся"
// @Router /analysis/insights [get]
func (h *Handlers) GetInsights(c *gin.Context) {
	snapshot, ok := h.analysis.LatestSnapshot()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No analysis results available"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"run_id":          snapshot.RunID,
		"completed_at":    snapshot.CompletedAt,
		"insights":        snapshot.Insights,
		"recommendations": snapshot.Recommendations,
	})
}

// GetRiskScores возвращает оценки риска оттока последнего анализа
// @Summary Получить оценки риска оттока
// @Description Возвращает вероятности оттока по клиентам с необязательным фильтром по уровню риска (Low, Medium, High)
// @Tags analysis
// @Accept json
// @Produce json
// @Param level query string false "Фильтр по уровню риска"
// @Success 200 {object} map[string]interface{} "Оценки риска"
// @Failure 400 {object} map[string]string "Неизвестный уровень риска"
// @Failure 404 {object} map[string]string "Анализ еще не выполнялся"
// @Router /analysis/risk-scores [get]
func (h *Handlers) GetRiskScores(c *gin.Context) {
	snapshot, ok := h.analysis.LatestSnapshot()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No analysis results available"})
		return
	}

	scores := snapshot.RiskScores
	if level := c.Query("level"); level != "" {
		normalized := normalizeRiskLevel(level)
		if normalized == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown risk level: " + level})
			return
		}
		filtered := make([]models.RiskScoreRow, 0, len(scores))
		for _, score := range scores {
			if score.RiskLevel == normalized {
				filtered = append(filtered, score)
			}
		}
		scores = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"run_id":      snapshot.RunID,
		"best_model":  snapshot.BestModel,
		"risk_scores": scores,
	})
}

// GetModelComparison возвращает сравнительную таблицу моделей
// @Summary Получить сравнение моделей
// @Description Возвращает метрики всех обученных моделей и имя лучшей по AUC
// @Tags analysis
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Сравнение моделей"
// @Failure 404 {object} map[string]string "Анализ еще не выполнялся"
// @Router /analysis/models [get]
func (h *Handlers) GetModelComparison(c *gin.Context) {
	snapshot, ok := h.analysis.LatestSnapshot()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No analysis results available"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"best_model": snapshot.BestModel,
		"models":     snapshot.ModelComparison,
	})
}

// GetSegments возвращает сегменты клиентов последнего анализа
// @Summary Получить сегменты клиентов
// @Description Возвращает RFM-сегменты и кластеры ценности последнего успешного запуска
// @Tags analysis
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Сегменты клиентов"
// @Failure 404 {object} map[string]string "Анализ еще не выполнялся"
// @Router /analysis/segments [get]
func (h *Handlers) GetSegments(c *gin.Context) {
	snapshot, ok := h.analysis.LatestSnapshot()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No analysis results available"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"run_id":       snapshot.RunID,
		"rfm_analysis": snapshot.RFM,
		"clusters":     snapshot.Clusters,
	})
}

// isUnprocessableInput сообщает, вызвана ли ошибка непригодными для
// анализа данными, а не сбоем сервиса
func isUnprocessableInput(err error) bool {
	var integrity *models.DataIntegrityError
	var degenerate *models.DegenerateInputError
	var singleClass *models.SingleClassLabelError
	return errors.As(err, &integrity) ||
		errors.As(err, &degenerate) ||
		errors.As(err, &singleClass)
}

func normalizeRiskLevel(level string) string {
	switch strings.ToLower(level) {
	case "low":
		return models.RiskLow
	case "medium":
		return models.RiskMedium
	case "high":
		return models.RiskHigh
	}
	return ""
}
