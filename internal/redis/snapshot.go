package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"retail-churn-analytics/internal/models"
)

const (
	snapshotKey = "analysis:latest:snapshot"
	snapshotTTL = 24 * time.Hour
)

// SaveSnapshot кэширует последний результат анализа для дашборда
func (c *Client) SaveSnapshot(snapshot *models.AnalysisSnapshot) error {
	ctx := context.Background()

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	return c.rdb.Set(ctx, snapshotKey, data, snapshotTTL).Err()
}

// GetSnapshot возвращает закэшированный результат анализа; nil без
// ошибки, если кэш пуст
func (c *Client) GetSnapshot() (*models.AnalysisSnapshot, error) {
	ctx := context.Background()

	data, err := c.rdb.Get(ctx, snapshotKey).Result()
	if err == redisv9.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	var snapshot models.AnalysisSnapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return &snapshot, nil
}
