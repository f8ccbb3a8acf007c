package sqlite

import (
	"retail-churn-analytics/internal/models"
)

// GetCustomers получает всех клиентов из БД
func (s *SQLiteStorage) GetCustomers() ([]models.Customer, error) {
	query := `
		SELECT customer_id, customer_name, email, registration_date,
		       location, age_group, income_level
		FROM customers
		ORDER BY customer_id
	`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		var c models.Customer
		err := rows.Scan(&c.CustomerID, &c.CustomerName, &c.Email,
			&c.RegistrationDate, &c.Location, &c.AgeGroup, &c.IncomeLevel)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	return customers, rows.Err()
}

// GetProducts получает все товары из БД
func (s *SQLiteStorage) GetProducts() ([]models.Product, error) {
	query := `
		SELECT product_id, product_name, category, subcategory,
		       price, cost, brand, profit_margin
		FROM products
		ORDER BY product_id
	`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		err := rows.Scan(&p.ProductID, &p.ProductName, &p.Category, &p.Subcategory,
			&p.Price, &p.Cost, &p.Brand, &p.ProfitMargin)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// GetTransactions получает все транзакции из БД
func (s *SQLiteStorage) GetTransactions() ([]models.TransactionRecord, error) {
	query := `
		SELECT transaction_id, customer_id, product_id, quantity,
		       unit_price, unit_cost, timestamp, payment_method,
		       shipping_method, total_amount, total_cost, profit
		FROM transactions
		ORDER BY timestamp
	`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.TransactionRecord
	for rows.Next() {
		var t models.TransactionRecord
		err := rows.Scan(&t.TransactionID, &t.CustomerID, &t.ProductID, &t.Quantity,
			&t.UnitPrice, &t.UnitCost, &t.Timestamp, &t.PaymentMethod,
			&t.ShippingMethod, &t.TotalAmount, &t.TotalCost, &t.Profit)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	return transactions, rows.Err()
}

// GetRiskScores получает оценки риска по идентификатору запуска
func (s *SQLiteStorage) GetRiskScores(runID string) ([]models.RiskScoreRow, error) {
	query := `
		SELECT customer_id, churn_probability, risk_level
		FROM risk_scores
		WHERE run_id = ?
		ORDER BY churn_probability DESC
	`

	rows, err := s.DB.Query(query, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []models.RiskScoreRow
	for rows.Next() {
		var r models.RiskScoreRow
		if err := rows.Scan(&r.CustomerID, &r.ChurnProbability, &r.RiskLevel); err != nil {
			return nil, err
		}
		scores = append(scores, r)
	}

	return scores, rows.Err()
}
