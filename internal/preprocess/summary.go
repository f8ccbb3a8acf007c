package preprocess

import (
	"retail-churn-analytics/internal/models"
)

// BuildDataSummary собирает сводку по очищенным таблицам
func BuildDataSummary(customers []models.Customer, products []models.Product,
	transactions []models.TransactionRecord) models.DataSummary {

	summary := models.DataSummary{
		TotalCustomers:    len(customers),
		TotalProducts:     len(products),
		TotalTransactions: len(transactions),
		PaymentMethods:    make(map[string]int),
	}

	for i, tx := range transactions {
		summary.TotalRevenue += tx.TotalAmount
		summary.TotalProfit += tx.Profit
		if tx.PaymentMethod != "" {
			summary.PaymentMethods[tx.PaymentMethod]++
		}
		if i == 0 || tx.Timestamp.Before(summary.DateRangeStart) {
			summary.DateRangeStart = tx.Timestamp
		}
		if i == 0 || tx.Timestamp.After(summary.DateRangeEnd) {
			summary.DateRangeEnd = tx.Timestamp
		}
	}

	summary.TotalRevenue = roundTwo(summary.TotalRevenue)
	summary.TotalProfit = roundTwo(summary.TotalProfit)
	return summary
}
