package churn

import (
	"math"

	"retail-churn-analytics/internal/models"
)

// Имена базовых числовых столбцов таблицы признаков оттока
var baseColumns = []string{
	"total_orders",
	"total_spent",
	"avg_order_value",
	"total_items",
	"unique_products",
	"total_profit",
	"days_since_first_purchase",
	"days_since_last_purchase",
	"avg_items_per_order",
	"avg_order_frequency",
	"total_spent_per_day",
	"recency_ratio",
	"order_frequency",
	"total_profit_per_order",
	"product_diversity",
	"customer_age_days",
	"days_between_orders",
	"loyalty_score",
}

var transactionColumns = []string{
	"transaction_count",
	"avg_transaction_amount",
	"std_transaction_amount",
	"avg_quantity",
	"total_quantity",
	"transaction_volatility",
	"avg_quantity_per_transaction",
}

// Features представляет результат инженерии признаков оттока:
// построчные производные величины, отобранную числовую таблицу для
// обучения и зафиксированный словарь категорий.
type Features struct {
	Rows    []models.ChurnFeatureRow
	Table   *models.FeatureTable
	Encoder *CategoryEncoder
	Dropped []string
}

// EngineerFeatures строит признаки оттока из клиентских агрегатов и
// сырых транзакций. Метка is_churned равна 1, когда с последней покупки
// прошло больше churnThresholdDays дней. Все дневные знаменатели
// сглаживаются "+1", чтобы клиент с единственной покупкой нулевой
// давности не приводил к делению на ноль.
func EngineerFeatures(customerFeatures []models.CustomerFeatureRow,
	transactions []models.TransactionRecord, churnThresholdDays int) *Features {

	txStats := transactionStats(transactions)
	encoder := FitCategoryEncoder(customerFeatures)

	columns := make([]string, 0, len(baseColumns)+len(transactionColumns))
	columns = append(columns, baseColumns...)
	if len(transactions) > 0 {
		columns = append(columns, transactionColumns...)
	}
	columns = append(columns, encoder.ColumnNames()...)

	rows := make([]models.ChurnFeatureRow, len(customerFeatures))
	table := &models.FeatureTable{
		Columns:     columns,
		CustomerIDs: make([]string, len(customerFeatures)),
		Rows:        make([][]float64, len(customerFeatures)),
		Labels:      make([]int, len(customerFeatures)),
	}

	for i, cf := range customerFeatures {
		tenure := float64(cf.DaysSinceFirstPurchase)
		recency := float64(cf.DaysSinceLastPurchase)
		orders := float64(cf.TotalOrders)

		row := models.ChurnFeatureRow{
			CustomerID:          cf.CustomerID,
			AvgOrderFrequency:   orders / (tenure + 1),
			TotalSpentPerDay:    cf.TotalSpent / (tenure + 1),
			RecencyRatio:        recency / (tenure + 1),
			LoyaltyScore:        orders * cf.TotalSpent / (tenure + 1),
			ProductDiversity:    float64(cf.UniqueProducts) / orders,
			DaysBetweenOrders:   tenure / (orders + 1),
			TotalProfitPerOrder: cf.TotalProfit / orders,
		}
		if cf.DaysSinceLastPurchase > churnThresholdDays {
			row.IsChurned = 1
		}

		values := []float64{
			orders,
			cf.TotalSpent,
			cf.AvgOrderValue,
			float64(cf.TotalItems),
			float64(cf.UniqueProducts),
			cf.TotalProfit,
			tenure,
			recency,
			cf.AvgItemsPerOrder,
			row.AvgOrderFrequency,
			row.TotalSpentPerDay,
			row.RecencyRatio,
			row.AvgOrderFrequency, // order_frequency дублирует avg_order_frequency, сохранено как в методике
			row.TotalProfitPerOrder,
			row.ProductDiversity,
			tenure,
			row.DaysBetweenOrders,
			row.LoyaltyScore,
		}

		if len(transactions) > 0 {
			stats, ok := txStats[cf.CustomerID]
			if !ok {
				// У клиента нет транзакций в сыром наборе: статистики
				// остаются пропусками
				stats = customerTxStats{
					count: math.NaN(), mean: math.NaN(), std: math.NaN(),
					avgQuantity: math.NaN(), totalQuantity: math.NaN(),
				}
			}
			volatility := stats.std / (stats.mean + 1)
			avgQtyPerTx := stats.totalQuantity / stats.count

			row.AvgTransactionAmount = stats.mean
			row.StdTransactionAmount = stats.std
			row.TransactionVolatility = volatility
			if !math.IsNaN(stats.totalQuantity) {
				row.TotalQuantity = int(stats.totalQuantity)
			}

			values = append(values,
				stats.count,
				stats.mean,
				stats.std,
				stats.avgQuantity,
				stats.totalQuantity,
				volatility,
				avgQtyPerTx,
			)
		}

		values = append(values, encoder.EncodeRow(cf)...)

		rows[i] = row
		table.CustomerIDs[i] = cf.CustomerID
		table.Rows[i] = values
		table.Labels[i] = row.IsChurned
	}

	selected, dropped := SelectFeatures(table, MissingThreshold, VarianceThreshold)
	return &Features{
		Rows:    rows,
		Table:   selected,
		Encoder: encoder,
		Dropped: dropped,
	}
}

type customerTxStats struct {
	count         float64
	mean          float64
	std           float64
	avgQuantity   float64
	totalQuantity float64
}

// transactionStats считает транзакционные статистики по клиентам.
// Стандартное отклонение выборочное: для единственной транзакции оно
// не определено и кодируется NaN.
func transactionStats(transactions []models.TransactionRecord) map[string]customerTxStats {
	type acc struct {
		count    int
		sum      float64
		sumSq    float64
		quantity int
	}
	byCustomer := make(map[string]*acc)
	for _, tx := range transactions {
		a, ok := byCustomer[tx.CustomerID]
		if !ok {
			a = &acc{}
			byCustomer[tx.CustomerID] = a
		}
		a.count++
		a.sum += tx.TotalAmount
		a.sumSq += tx.TotalAmount * tx.TotalAmount
		a.quantity += tx.Quantity
	}

	stats := make(map[string]customerTxStats, len(byCustomer))
	for customerID, a := range byCustomer {
		n := float64(a.count)
		mean := a.sum / n
		std := math.NaN()
		if a.count > 1 {
			variance := (a.sumSq - n*mean*mean) / (n - 1)
			if variance < 0 {
				variance = 0
			}
			std = math.Sqrt(variance)
		}
		stats[customerID] = customerTxStats{
			count:         n,
			mean:          mean,
			std:           std,
			avgQuantity:   float64(a.quantity) / n,
			totalQuantity: float64(a.quantity),
		}
	}
	return stats
}
