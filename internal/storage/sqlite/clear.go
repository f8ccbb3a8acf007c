package sqlite

// ClearDataset удаляет набор данных и все оценки риска из БД
func (s *SQLiteStorage) ClearDataset() error {
	query := `
	DELETE FROM risk_scores;
	DELETE FROM transactions;
	DELETE FROM products;
	DELETE FROM customers;
	`
	_, err := s.DB.Exec(query)
	return err
}
