package generator

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"retail-churn-analytics/internal/models"
)

// Размеры демонстрационного набора по умолчанию
const (
	DefaultCustomers    = 1000
	DefaultProducts     = 200
	DefaultTransactions = 5000
)

// DatasetGenerator генерирует демонстрационный набор розничных данных.
// При фиксированном зерне результат детерминирован.
type DatasetGenerator struct {
	rand *rand.Rand
}

func NewDatasetGenerator(seed int64) *DatasetGenerator {
	return &DatasetGenerator{
		rand: rand.New(rand.NewSource(seed)),
	}
}

// GenerateDataset генерирует согласованные таблицы клиентов, товаров и
// транзакций. Транзакции раскиданы по последнему году, так что при
// пороге оттока 90 дней в наборе есть и ушедшие, и активные клиенты.
func (g *DatasetGenerator) GenerateDataset(nCustomers, nProducts, nTransactions int) (
	[]models.Customer, []models.Product, []models.TransactionRecord) {

	now := time.Now()

	customers := make([]models.Customer, nCustomers)
	registrationStart := now.AddDate(-3, 0, 0)
	for i := 0; i < nCustomers; i++ {
		customers[i] = models.Customer{
			CustomerID:       fmt.Sprintf("CUST-%04d", i+1),
			CustomerName:     fmt.Sprintf("Customer_%d", i+1),
			Email:            fmt.Sprintf("customer%d@email.com", i+1),
			RegistrationDate: registrationStart.AddDate(0, 0, i%1000),
			Location:         pick(g.rand, locations),
			AgeGroup:         pick(g.rand, ageGroups),
			IncomeLevel:      pick(g.rand, incomeLevels),
		}
	}

	products := make([]models.Product, nProducts)
	for i := 0; i < nProducts; i++ {
		category := pick(g.rand, categories)
		price := roundTwo(10 + g.rand.Float64()*490)
		// Себестоимость не превышает цену, чтобы товар не отсеялся
		// при очистке
		cost := roundTwo(price * (0.3 + g.rand.Float64()*0.6))
		products[i] = models.Product{
			ProductID:    fmt.Sprintf("PROD-%04d", i+1),
			ProductName:  fmt.Sprintf("Product_%d", i+1),
			Category:     category,
			Subcategory:  fmt.Sprintf("Sub_%s_%d", category, i),
			Price:        price,
			Cost:         cost,
			Brand:        fmt.Sprintf("Brand_%d", i%20),
			ProfitMargin: roundTwo((price - cost) / price),
		}
	}

	transactions := make([]models.TransactionRecord, nTransactions)
	for i := 0; i < nTransactions; i++ {
		product := products[g.rand.Intn(nProducts)]
		quantity := 1 + g.rand.Intn(9)
		timestamp := now.AddDate(0, 0, -g.rand.Intn(365)).
			Add(-time.Duration(g.rand.Intn(24)) * time.Hour)

		tx := models.TransactionRecord{
			TransactionID:  fmt.Sprintf("TXN-%06d", i+1),
			CustomerID:     customers[g.rand.Intn(nCustomers)].CustomerID,
			ProductID:      product.ProductID,
			Quantity:       quantity,
			UnitPrice:      product.Price,
			UnitCost:       product.Cost,
			Timestamp:      timestamp,
			PaymentMethod:  pick(g.rand, paymentMethods),
			ShippingMethod: pick(g.rand, shippingMethods),
		}
		tx.TotalAmount = roundTwo(float64(quantity) * product.Price)
		tx.TotalCost = roundTwo(float64(quantity) * product.Cost)
		tx.Profit = roundTwo(tx.TotalAmount - tx.TotalCost)
		transactions[i] = tx
	}

	return customers, products, transactions
}

var (
	locations       = []string{"US", "UK", "CA", "AU", "DE"}
	ageGroups       = []string{"18-25", "26-35", "36-45", "46-55", "55+"}
	incomeLevels    = []string{"Low", "Medium", "High"}
	categories      = []string{"Electronics", "Clothing", "Home & Garden", "Books", "Sports", "Beauty"}
	paymentMethods  = []string{"Credit Card", "PayPal", "Bank Transfer"}
	shippingMethods = []string{"Standard", "Express", "Free"}
)

func pick(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}

// roundTwo округляет число до 2 знаков после запятой
func roundTwo(value float64) float64 {
	return math.Round(value*100) / 100
}
