package sqlite

import (
	"fmt"
	"time"

	"retail-churn-analytics/internal/models"
)

// SaveRiskScores сохраняет оценки риска оттока одного запуска. Повторное
// сохранение того же run_id перезаписывает прежние строки.
func (s *SQLiteStorage) SaveRiskScores(runID string, completedAt time.Time,
	scores []models.RiskScoreRow) error {

	return retryOperation(func() error {
		tx, err := s.DB.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		defer tx.Rollback()

		if _, err := tx.Exec(`DELETE FROM risk_scores WHERE run_id = ?`, runID); err != nil {
			return err
		}

		stmt, err := tx.Prepare(`
			INSERT INTO risk_scores (
				run_id, customer_id, churn_probability, risk_level, completed_at
			) VALUES (?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, score := range scores {
			if _, err := stmt.Exec(runID, score.CustomerID,
				score.ChurnProbability, score.RiskLevel, completedAt); err != nil {
				return fmt.Errorf("failed to insert risk score for %s: %w", score.CustomerID, err)
			}
		}

		return tx.Commit()
	}, 3, 100*time.Millisecond)
}
