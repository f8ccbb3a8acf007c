package preprocess

import (
	"fmt"
	"math"

	"retail-churn-analytics/internal/models"
)

// CleanTables очищает входные таблицы: отбрасывает строки с
// неположительным количеством, неконечными денежными полями и
// дубликатами первичных ключей, после чего проверяет целостность
// внешних ключей. Нарушение целостности фатально для запуска.
func CleanTables(customers []models.Customer, products []models.Product,
	transactions []models.TransactionRecord) ([]models.Customer, []models.Product, []models.TransactionRecord, error) {

	customersClean := cleanCustomers(customers)
	productsClean := cleanProducts(products)
	transactionsClean := cleanTransactions(transactions)

	if err := validateForeignKeys(customersClean, productsClean, transactionsClean); err != nil {
		return nil, nil, nil, err
	}

	return customersClean, productsClean, transactionsClean, nil
}

func cleanCustomers(customers []models.Customer) []models.Customer {
	seen := make(map[string]bool, len(customers))
	clean := make([]models.Customer, 0, len(customers))
	for _, c := range customers {
		if c.CustomerID == "" || seen[c.CustomerID] {
			continue
		}
		seen[c.CustomerID] = true
		clean = append(clean, c)
	}
	return clean
}

func cleanProducts(products []models.Product) []models.Product {
	seen := make(map[string]bool, len(products))
	clean := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.ProductID == "" || seen[p.ProductID] {
			continue
		}
		if !isFinite(p.Price) || !isFinite(p.Cost) {
			continue
		}
		// Цена и себестоимость берутся по модулю; товары, продаваемые
		// ниже себестоимости, исключаются из анализа
		p.Price = math.Abs(p.Price)
		p.Cost = math.Abs(p.Cost)
		if p.Price < p.Cost {
			continue
		}
		if p.Price > 0 {
			p.ProfitMargin = (p.Price - p.Cost) / p.Price
		}
		seen[p.ProductID] = true
		clean = append(clean, p)
	}
	return clean
}

func cleanTransactions(transactions []models.TransactionRecord) []models.TransactionRecord {
	seen := make(map[string]bool, len(transactions))
	clean := make([]models.TransactionRecord, 0, len(transactions))
	for _, tx := range transactions {
		if tx.TransactionID == "" || seen[tx.TransactionID] {
			continue
		}
		if tx.Quantity <= 0 {
			continue
		}
		if !isFinite(tx.UnitPrice) || !isFinite(tx.UnitCost) || tx.UnitPrice < 0 || tx.UnitCost < 0 {
			continue
		}
		tx.TotalAmount = roundTwo(float64(tx.Quantity) * tx.UnitPrice)
		tx.TotalCost = roundTwo(float64(tx.Quantity) * tx.UnitCost)
		tx.Profit = roundTwo(tx.TotalAmount - tx.TotalCost)
		seen[tx.TransactionID] = true
		clean = append(clean, tx)
	}
	return clean
}

// validateForeignKeys проверяет, что каждая транзакция ссылается на
// существующего клиента и товар
func validateForeignKeys(customers []models.Customer, products []models.Product,
	transactions []models.TransactionRecord) error {

	customerIDs := make(map[string]bool, len(customers))
	for _, c := range customers {
		customerIDs[c.CustomerID] = true
	}
	productIDs := make(map[string]bool, len(products))
	for _, p := range products {
		productIDs[p.ProductID] = true
	}

	for _, tx := range transactions {
		if !customerIDs[tx.CustomerID] {
			return &models.DataIntegrityError{
				Table:  "transactions",
				Reason: fmt.Sprintf("transaction %s references unknown customer %s", tx.TransactionID, tx.CustomerID),
			}
		}
		if !productIDs[tx.ProductID] {
			return &models.DataIntegrityError{
				Table:  "transactions",
				Reason: fmt.Sprintf("transaction %s references unknown product %s", tx.TransactionID, tx.ProductID),
			}
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// roundTwo округляет значение до 2 знаков после запятой
func roundTwo(v float64) float64 {
	return math.Round(v*100) / 100
}
