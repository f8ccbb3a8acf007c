package models

import (
	"time"
)

// Customer представляет запись клиента из входной таблицы
type Customer struct {
	CustomerID       string    `json:"customer_id" binding:"required"`
	CustomerName     string    `json:"customer_name"`
	Email            string    `json:"email"`
	RegistrationDate time.Time `json:"registration_date"`
	Location         string    `json:"location"`
	AgeGroup         string    `json:"age_group"`
	IncomeLevel      string    `json:"income_level"`
}

// Product представляет запись товара из входной таблицы
type Product struct {
	ProductID    string  `json:"product_id" binding:"required"`
	ProductName  string  `json:"product_name"`
	Category     string  `json:"category"`
	Subcategory  string  `json:"subcategory"`
	Price        float64 `json:"price"`
	Cost         float64 `json:"cost"`
	Brand        string  `json:"brand"`
	ProfitMargin float64 `json:"profit_margin"`
}

// TransactionRecord представляет одну покупку.
// Производные поля TotalAmount, TotalCost и Profit вычисляются при
// загрузке и далее не изменяются.
type TransactionRecord struct {
	TransactionID  string    `json:"transaction_id" binding:"required"`
	CustomerID     string    `json:"customer_id" binding:"required"`
	ProductID      string    `json:"product_id" binding:"required"`
	Quantity       int       `json:"quantity" binding:"required,gt=0"`
	UnitPrice      float64   `json:"unit_price"`
	UnitCost       float64   `json:"unit_cost"`
	Timestamp      time.Time `json:"timestamp"`
	PaymentMethod  string    `json:"payment_method"`
	ShippingMethod string    `json:"shipping_method"`
	TotalAmount    float64   `json:"total_amount"`
	TotalCost      float64   `json:"total_cost"`
	Profit         float64   `json:"profit"`
}

// CustomerFeatureRow представляет поведенческие признаки одного клиента.
// Дни считаются относительно единого опорного времени, зафиксированного
// один раз на запуск конвейера.
type CustomerFeatureRow struct {
	CustomerID             string    `json:"customer_id"`
	TotalOrders            int       `json:"total_orders"`
	TotalSpent             float64   `json:"total_spent"`
	AvgOrderValue          float64   `json:"avg_order_value"`
	TotalItems             int       `json:"total_items"`
	UniqueProducts         int       `json:"unique_products"`
	TotalProfit            float64   `json:"total_profit"`
	FirstPurchase          time.Time `json:"first_purchase"`
	LastPurchase           time.Time `json:"last_purchase"`
	DaysSinceFirstPurchase int       `json:"days_since_first_purchase"`
	DaysSinceLastPurchase  int       `json:"days_since_last_purchase"`
	AvgItemsPerOrder       float64   `json:"avg_items_per_order"`
	Location               string    `json:"location"`
	AgeGroup               string    `json:"age_group"`
	IncomeLevel            string    `json:"income_level"`
}

// ProductFeatureRow представляет агрегаты продаж одного товара
type ProductFeatureRow struct {
	ProductID          string  `json:"product_id"`
	ProductName        string  `json:"product_name"`
	Category           string  `json:"category"`
	TotalSales         int     `json:"total_sales"`
	TotalUnitsSold     int     `json:"total_units_sold"`
	TotalRevenue       float64 `json:"total_revenue"`
	TotalProfit        float64 `json:"total_profit"`
	UniqueCustomers    int     `json:"unique_customers"`
	AvgOrderQuantity   float64 `json:"avg_order_quantity"`
	RevenuePerCustomer float64 `json:"revenue_per_customer"`
}

// RFMRow представляет RFM-метрики и оценки одного клиента.
// Оценки назначаются по квантильным рангам текущей выборки: пересчет на
// другой выборке меняет границы бинов.
type RFMRow struct {
	CustomerID string  `json:"customer_id"`
	Recency    int     `json:"recency"`
	Frequency  int     `json:"frequency"`
	Monetary   float64 `json:"monetary"`
	R          int     `json:"r_score"`
	F          int     `json:"f_score"`
	M          int     `json:"m_score"`
	RFMScore   string  `json:"rfm_score"`
	Segment    string  `json:"segment"`
}

// ClusterAssignment представляет результат кластеризации клиента.
// ClusterID — произвольный индекс раздела; смысловая метка выводится из
// статистик кластера и не привязана к номеру.
type ClusterAssignment struct {
	CustomerID string `json:"customer_id"`
	ClusterID  int    `json:"cluster_id"`
	Segment    string `json:"segment"`
}

// ChurnFeatureRow представляет производные признаки оттока одного клиента
type ChurnFeatureRow struct {
	CustomerID            string  `json:"customer_id"`
	IsChurned             int     `json:"is_churned"`
	AvgOrderFrequency     float64 `json:"avg_order_frequency"`
	TotalSpentPerDay      float64 `json:"total_spent_per_day"`
	RecencyRatio          float64 `json:"recency_ratio"`
	LoyaltyScore          float64 `json:"loyalty_score"`
	ProductDiversity      float64 `json:"product_diversity"`
	DaysBetweenOrders     float64 `json:"days_between_orders"`
	TotalProfitPerOrder   float64 `json:"total_profit_per_order"`
	AvgTransactionAmount  float64 `json:"avg_transaction_amount"`
	StdTransactionAmount  float64 `json:"std_transaction_amount"`
	TransactionVolatility float64 `json:"transaction_volatility"`
	TotalQuantity         int     `json:"total_quantity"`
}

// FeatureTable представляет числовую матрицу признаков для обучения и
// скоринга. Пропуски кодируются NaN.
type FeatureTable struct {
	Columns     []string    `json:"columns"`
	CustomerIDs []string    `json:"customer_ids"`
	Rows        [][]float64 `json:"rows"`
	Labels      []int       `json:"labels"`
}

// Column возвращает значения столбца по имени и признак его наличия
func (t *FeatureTable) Column(name string) ([]float64, bool) {
	for j, col := range t.Columns {
		if col != name {
			continue
		}
		values := make([]float64, len(t.Rows))
		for i, row := range t.Rows {
			values[i] = row[j]
		}
		return values, true
	}
	return nil, false
}

// ModelResult представляет метрики одной обученной модели на отложенной
// выборке
type ModelResult struct {
	Name          string    `json:"name"`
	Accuracy      float64   `json:"accuracy"`
	AUC           float64   `json:"auc"`
	Predictions   []int     `json:"-"`
	Probabilities []float64 `json:"-"`
	TestLabels    []int     `json:"-"`
	Importances   []float64 `json:"importances,omitempty"`
}

// ModelComparisonRow представляет строку сравнительной таблицы моделей
type ModelComparisonRow struct {
	Model    string  `json:"model"`
	Accuracy float64 `json:"accuracy"`
	AUC      float64 `json:"auc"`
	Best     bool    `json:"best"`
}

// Уровни риска оттока. Границы фиксированы (0.3 и 0.7), граничное
// значение относится к верхнему уровню.
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// RiskScoreRow представляет откалиброванную вероятность оттока клиента
type RiskScoreRow struct {
	CustomerID       string  `json:"customer_id"`
	ChurnProbability float64 `json:"churn_probability"`
	RiskLevel        string  `json:"risk_level"`
}

// InsightSummary представляет плоскую сводку итогов анализа
type InsightSummary struct {
	TotalCustomers        int            `json:"total_customers"`
	TotalRevenue          float64        `json:"total_revenue"`
	AvgCustomerValue      float64        `json:"avg_customer_value"`
	AvgOrderValue         float64        `json:"avg_order_value"`
	TopSegment            string         `json:"top_segment"`
	ChampionsCount        int            `json:"champions_count"`
	AtRiskCount           int            `json:"at_risk_count"`
	HighValueCustomers    int            `json:"high_value_customers"`
	CustomerRetentionRate float64        `json:"customer_retention_rate"`
	SegmentBreakdown      map[string]int `json:"segment_breakdown"`
	RFMBreakdown          map[string]int `json:"rfm_breakdown"`
	ChurnRate             float64        `json:"churn_rate"`
	HighRiskCustomers     int            `json:"high_risk_customers"`
	MediumRiskCustomers   int            `json:"medium_risk_customers"`
	LowRiskCustomers      int            `json:"low_risk_customers"`
	AvgChurnProbability   float64        `json:"avg_churn_probability"`
	CustomersAtRisk       int            `json:"customers_at_risk"`
}

// DataSummary представляет сводку по исходным таблицам
type DataSummary struct {
	TotalCustomers    int            `json:"total_customers"`
	TotalProducts     int            `json:"total_products"`
	TotalTransactions int            `json:"total_transactions"`
	TotalRevenue      float64        `json:"total_revenue"`
	TotalProfit       float64        `json:"total_profit"`
	DateRangeStart    time.Time      `json:"date_range_start"`
	DateRangeEnd      time.Time      `json:"date_range_end"`
	PaymentMethods    map[string]int `json:"payment_methods"`
}

// AnalysisSnapshot представляет полный результат одного запуска конвейера
type AnalysisSnapshot struct {
	RunID            string               `json:"run_id"`
	CompletedAt      time.Time            `json:"completed_at"`
	DataSummary      DataSummary          `json:"data_summary"`
	CustomerFeatures []CustomerFeatureRow `json:"customer_features"`
	ProductFeatures  []ProductFeatureRow  `json:"product_features"`
	RFM              []RFMRow             `json:"rfm_analysis"`
	Clusters         []ClusterAssignment  `json:"cluster_assignments"`
	ChurnFeatures    []ChurnFeatureRow    `json:"-"`
	RiskScores       []RiskScoreRow       `json:"churn_risk_scores"`
	ModelComparison  []ModelComparisonRow `json:"model_comparison"`
	BestModel        string               `json:"best_model"`
	Insights         InsightSummary       `json:"insights"`
	Recommendations  []string             `json:"recommendations"`
}
