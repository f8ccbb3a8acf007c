package ml

import (
	"math"

	"retail-churn-analytics/internal/models"
)

// Scaler приводит признаки к нулевому среднему и единичной дисперсии и
// запоминает имена признаков. Обученный на тренировочных данных скейлер
// переиспользуется при скоринге новых данных: отсутствие ожидаемого
// признака — ошибка, а не молчаливый ноль.
type Scaler struct {
	features []string
	means    []float64
	stds     []float64
}

// Fit вычисляет статистики по всей таблице. Пропуски не участвуют в
// среднем и затем заполняются им же.
func (s *Scaler) Fit(table *models.FeatureTable) {
	s.features = make([]string, len(table.Columns))
	copy(s.features, table.Columns)
	s.means = make([]float64, len(table.Columns))
	s.stds = make([]float64, len(table.Columns))

	for j := range table.Columns {
		var sum float64
		var count int
		for i := range table.Rows {
			if v := table.Rows[i][j]; !math.IsNaN(v) {
				sum += v
				count++
			}
		}
		mean := 0.0
		if count > 0 {
			mean = sum / float64(count)
		}
		s.means[j] = mean

		var variance float64
		for i := range table.Rows {
			v := table.Rows[i][j]
			if math.IsNaN(v) {
				v = mean
			}
			variance += (v - mean) * (v - mean)
		}
		variance /= float64(len(table.Rows))
		s.stds[j] = math.Sqrt(variance)
	}
}

// Transform заполняет пропуски обученными средними и масштабирует
// таблицу в порядке обученных признаков. Лишние столбцы игнорируются.
func (s *Scaler) Transform(table *models.FeatureTable) ([][]float64, error) {
	indexByName := make(map[string]int, len(table.Columns))
	for j, name := range table.Columns {
		indexByName[name] = j
	}

	mapping := make([]int, len(s.features))
	for k, name := range s.features {
		j, ok := indexByName[name]
		if !ok {
			return nil, &models.MissingFeatureError{Feature: name}
		}
		mapping[k] = j
	}

	scaled := make([][]float64, len(table.Rows))
	for i := range table.Rows {
		row := make([]float64, len(s.features))
		for k, j := range mapping {
			v := table.Rows[i][j]
			if math.IsNaN(v) {
				v = s.means[k]
			}
			if s.stds[k] > 0 {
				row[k] = (v - s.means[k]) / s.stds[k]
			}
		}
		scaled[i] = row
	}
	return scaled, nil
}

// FeatureNames возвращает имена признаков в обученном порядке
func (s *Scaler) FeatureNames() []string {
	names := make([]string, len(s.features))
	copy(names, s.features)
	return names
}
