package preprocess

import (
	"sort"
	"time"

	"retail-churn-analytics/internal/models"
)

// BuildCustomerFeatures агрегирует транзакции в поведенческие признаки
// клиентов. Возрастные поля считаются относительно referenceTime,
// зафиксированного один раз на запуск. Клиенты без транзакций после
// очистки в результат не попадают.
func BuildCustomerFeatures(customers []models.Customer, transactions []models.TransactionRecord,
	referenceTime time.Time) []models.CustomerFeatureRow {

	demographics := make(map[string]models.Customer, len(customers))
	for _, c := range customers {
		demographics[c.CustomerID] = c
	}

	type accumulator struct {
		orders     int
		spent      float64
		items      int
		profit     float64
		products   map[string]bool
		first      time.Time
		last       time.Time
	}

	byCustomer := make(map[string]*accumulator)
	for _, tx := range transactions {
		acc, ok := byCustomer[tx.CustomerID]
		if !ok {
			acc = &accumulator{
				products: make(map[string]bool),
				first:    tx.Timestamp,
				last:     tx.Timestamp,
			}
			byCustomer[tx.CustomerID] = acc
		}
		acc.orders++
		acc.spent += tx.TotalAmount
		acc.items += tx.Quantity
		acc.profit += tx.Profit
		acc.products[tx.ProductID] = true
		if tx.Timestamp.Before(acc.first) {
			acc.first = tx.Timestamp
		}
		if tx.Timestamp.After(acc.last) {
			acc.last = tx.Timestamp
		}
	}

	rows := make([]models.CustomerFeatureRow, 0, len(byCustomer))
	for customerID, acc := range byCustomer {
		row := models.CustomerFeatureRow{
			CustomerID:             customerID,
			TotalOrders:            acc.orders,
			TotalSpent:             roundTwo(acc.spent),
			AvgOrderValue:          roundTwo(acc.spent / float64(acc.orders)),
			TotalItems:             acc.items,
			UniqueProducts:         len(acc.products),
			TotalProfit:            roundTwo(acc.profit),
			FirstPurchase:          acc.first,
			LastPurchase:           acc.last,
			DaysSinceFirstPurchase: daysBetween(acc.first, referenceTime),
			DaysSinceLastPurchase:  daysBetween(acc.last, referenceTime),
			AvgItemsPerOrder:       roundTwo(float64(acc.items) / float64(acc.orders)),
		}
		if demo, ok := demographics[customerID]; ok {
			row.Location = demo.Location
			row.AgeGroup = demo.AgeGroup
			row.IncomeLevel = demo.IncomeLevel
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].CustomerID < rows[j].CustomerID })
	return rows
}

// BuildProductFeatures агрегирует транзакции в признаки товаров
func BuildProductFeatures(products []models.Product, transactions []models.TransactionRecord) []models.ProductFeatureRow {
	details := make(map[string]models.Product, len(products))
	for _, p := range products {
		details[p.ProductID] = p
	}

	type accumulator struct {
		sales     int
		units     int
		revenue   float64
		profit    float64
		customers map[string]bool
	}

	byProduct := make(map[string]*accumulator)
	for _, tx := range transactions {
		acc, ok := byProduct[tx.ProductID]
		if !ok {
			acc = &accumulator{customers: make(map[string]bool)}
			byProduct[tx.ProductID] = acc
		}
		acc.sales++
		acc.units += tx.Quantity
		acc.revenue += tx.TotalAmount
		acc.profit += tx.Profit
		acc.customers[tx.CustomerID] = true
	}

	rows := make([]models.ProductFeatureRow, 0, len(byProduct))
	for productID, acc := range byProduct {
		row := models.ProductFeatureRow{
			ProductID:          productID,
			TotalSales:         acc.sales,
			TotalUnitsSold:     acc.units,
			TotalRevenue:       roundTwo(acc.revenue),
			TotalProfit:        roundTwo(acc.profit),
			UniqueCustomers:    len(acc.customers),
			AvgOrderQuantity:   roundTwo(float64(acc.units) / float64(acc.sales)),
			RevenuePerCustomer: roundTwo(acc.revenue / float64(len(acc.customers))),
		}
		if p, ok := details[productID]; ok {
			row.ProductName = p.ProductName
			row.Category = p.Category
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].ProductID < rows[j].ProductID })
	return rows
}

// daysBetween возвращает число полных дней от t до ref
func daysBetween(t, ref time.Time) int {
	return int(ref.Sub(t).Hours() / 24)
}
