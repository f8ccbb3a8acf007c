package churn

import (
	"sort"

	"retail-churn-analytics/internal/models"
)

// Демографические поля, которые разворачиваются в индикаторные столбцы
var categoricalFields = []string{"location", "age_group", "income_level"}

// CategoryEncoder хранит словарь категорий, зафиксированный при
// обучении. Кодирование новых данных использует ровно этот словарь:
// категория вне словаря дает нулевую строку индикаторов, а не новый
// столбец.
type CategoryEncoder struct {
	vocab map[string][]string
}

// FitCategoryEncoder собирает словарь наблюдаемых категорий
func FitCategoryEncoder(rows []models.CustomerFeatureRow) *CategoryEncoder {
	observed := map[string]map[string]bool{
		"location":     make(map[string]bool),
		"age_group":    make(map[string]bool),
		"income_level": make(map[string]bool),
	}
	for _, row := range rows {
		for field, value := range fieldValues(row) {
			if value != "" {
				observed[field][value] = true
			}
		}
	}

	vocab := make(map[string][]string, len(categoricalFields))
	for field, values := range observed {
		categories := make([]string, 0, len(values))
		for v := range values {
			categories = append(categories, v)
		}
		sort.Strings(categories)
		vocab[field] = categories
	}
	return &CategoryEncoder{vocab: vocab}
}

// ColumnNames возвращает имена индикаторных столбцов в стабильном порядке
func (e *CategoryEncoder) ColumnNames() []string {
	var names []string
	for _, field := range categoricalFields {
		for _, category := range e.vocab[field] {
			names = append(names, field+"_"+category)
		}
	}
	return names
}

// EncodeRow возвращает индикаторы строки в порядке ColumnNames
func (e *CategoryEncoder) EncodeRow(row models.CustomerFeatureRow) []float64 {
	values := fieldValues(row)
	var encoded []float64
	for _, field := range categoricalFields {
		for _, category := range e.vocab[field] {
			if values[field] == category {
				encoded = append(encoded, 1)
			} else {
				encoded = append(encoded, 0)
			}
		}
	}
	return encoded
}

func fieldValues(row models.CustomerFeatureRow) map[string]string {
	return map[string]string{
		"location":     row.Location,
		"age_group":    row.AgeGroup,
		"income_level": row.IncomeLevel,
	}
}
