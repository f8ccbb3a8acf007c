package churn

import (
	"math"

	"retail-churn-analytics/internal/models"
)

const (
	// Доля пропусков, выше которой столбец отбрасывается
	MissingThreshold = 0.5
	// Дисперсия, ниже которой столбец считается почти константным
	VarianceThreshold = 0.01
)

// SelectFeatures отбрасывает столбцы с долей пропусков выше
// missingThreshold, затем столбцы с дисперсией ниже varianceThreshold
// (пропуски при расчете дисперсии заполняются нулями). Возвращает
// новую таблицу и имена отброшенных столбцов.
func SelectFeatures(table *models.FeatureTable, missingThreshold, varianceThreshold float64) (*models.FeatureTable, []string) {
	n := len(table.Rows)
	keep := make([]int, 0, len(table.Columns))
	var dropped []string

	for j, name := range table.Columns {
		missing := 0
		for i := 0; i < n; i++ {
			if math.IsNaN(table.Rows[i][j]) {
				missing++
			}
		}
		if n > 0 && float64(missing)/float64(n) > missingThreshold {
			dropped = append(dropped, name)
			continue
		}

		var sum float64
		for i := 0; i < n; i++ {
			v := table.Rows[i][j]
			if math.IsNaN(v) {
				v = 0
			}
			sum += v
		}
		mean := sum / float64(n)
		var variance float64
		for i := 0; i < n; i++ {
			v := table.Rows[i][j]
			if math.IsNaN(v) {
				v = 0
			}
			variance += (v - mean) * (v - mean)
		}
		variance /= float64(n)

		if variance < varianceThreshold {
			dropped = append(dropped, name)
			continue
		}
		keep = append(keep, j)
	}

	selected := &models.FeatureTable{
		Columns:     make([]string, len(keep)),
		CustomerIDs: table.CustomerIDs,
		Rows:        make([][]float64, n),
		Labels:      table.Labels,
	}
	for idx, j := range keep {
		selected.Columns[idx] = table.Columns[j]
	}
	for i := 0; i < n; i++ {
		row := make([]float64, len(keep))
		for idx, j := range keep {
			row[idx] = table.Rows[i][j]
		}
		selected.Rows[i] = row
	}
	return selected, dropped
}
