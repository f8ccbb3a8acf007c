package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"retail-churn-analytics/internal/models"
)

// SaveDataset атомарно заменяет сохраненный набор данных: старые строки
// удаляются и новые вставляются в одной транзакции
func (s *SQLiteStorage) SaveDataset(customers []models.Customer, products []models.Product,
	transactions []models.TransactionRecord) error {

	return retryOperation(func() error {
		return s.saveDatasetOnce(customers, products, transactions)
	}, 3, 100*time.Millisecond)
}

func (s *SQLiteStorage) saveDatasetOnce(customers []models.Customer, products []models.Product,
	transactions []models.TransactionRecord) error {

	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"transactions", "products", "customers"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}

	if err := insertCustomers(tx, customers); err != nil {
		return err
	}
	if err := insertProducts(tx, products); err != nil {
		return err
	}
	if err := insertTransactions(tx, transactions); err != nil {
		return err
	}

	return tx.Commit()
}

func insertCustomers(tx *sql.Tx, customers []models.Customer) error {
	stmt, err := tx.Prepare(`
		INSERT INTO customers (
			customer_id, customer_name, email, registration_date,
			location, age_group, income_level
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range customers {
		if _, err := stmt.Exec(c.CustomerID, c.CustomerName, c.Email,
			c.RegistrationDate, c.Location, c.AgeGroup, c.IncomeLevel); err != nil {
			return fmt.Errorf("failed to insert customer %s: %w", c.CustomerID, err)
		}
	}
	return nil
}

func insertProducts(tx *sql.Tx, products []models.Product) error {
	stmt, err := tx.Prepare(`
		INSERT INTO products (
			product_id, product_name, category, subcategory,
			price, cost, brand, profit_margin
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range products {
		if _, err := stmt.Exec(p.ProductID, p.ProductName, p.Category, p.Subcategory,
			p.Price, p.Cost, p.Brand, p.ProfitMargin); err != nil {
			return fmt.Errorf("failed to insert product %s: %w", p.ProductID, err)
		}
	}
	return nil
}

func insertTransactions(tx *sql.Tx, transactions []models.TransactionRecord) error {
	stmt, err := tx.Prepare(`
		INSERT INTO transactions (
			transaction_id, customer_id, product_id, quantity,
			unit_price, unit_cost, timestamp, payment_method,
			shipping_method, total_amount, total_cost, profit
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, t := range transactions {
		if _, err := stmt.Exec(t.TransactionID, t.CustomerID, t.ProductID, t.Quantity,
			t.UnitPrice, t.UnitCost, t.Timestamp, t.PaymentMethod,
			t.ShippingMethod, t.TotalAmount, t.TotalCost, t.Profit); err != nil {
			return fmt.Errorf("failed to insert transaction %s: %w", t.TransactionID, err)
		}
	}
	return nil
}
