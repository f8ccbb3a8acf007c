package sqlite

// initSchema инициализирует схему БД
func (s *SQLiteStorage) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS customers (
		customer_id TEXT PRIMARY KEY,
		customer_name TEXT,
		email TEXT,
		registration_date DATETIME,
		location TEXT,
		age_group TEXT,
		income_level TEXT
	);

	CREATE TABLE IF NOT EXISTS products (
		product_id TEXT PRIMARY KEY,
		product_name TEXT,
		category TEXT,
		subcategory TEXT,
		price REAL NOT NULL,
		cost REAL NOT NULL,
		brand TEXT,
		profit_margin REAL
	);

	CREATE TABLE IF NOT EXISTS transactions (
		transaction_id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		unit_price REAL NOT NULL,
		unit_cost REAL NOT NULL,
		timestamp DATETIME NOT NULL,
		payment_method TEXT,
		shipping_method TEXT,
		total_amount REAL NOT NULL,
		total_cost REAL NOT NULL,
		profit REAL NOT NULL,
		FOREIGN KEY (customer_id) REFERENCES customers(customer_id),
		FOREIGN KEY (product_id) REFERENCES products(product_id)
	);

	CREATE TABLE IF NOT EXISTS risk_scores (
		run_id TEXT NOT NULL,
		customer_id TEXT NOT NULL,
		churn_probability REAL NOT NULL,
		risk_level TEXT NOT NULL,
		completed_at DATETIME NOT NULL,
		PRIMARY KEY (run_id, customer_id)
	);

	CREATE INDEX IF NOT EXISTS idx_tx_customer_id ON transactions(customer_id);
	CREATE INDEX IF NOT EXISTS idx_tx_product_id ON transactions(product_id);
	CREATE INDEX IF NOT EXISTS idx_tx_timestamp ON transactions(timestamp);
	CREATE INDEX IF NOT EXISTS idx_risk_run_id ON risk_scores(run_id);
	`

	_, err := s.DB.Exec(query)
	return err
}
