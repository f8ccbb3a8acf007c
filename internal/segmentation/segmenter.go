package segmentation

import (
	"fmt"
	"math"

	"retail-churn-analytics/internal/models"
)

// Названия ценностных сегментов
const (
	SegmentHighValue  = "High-Value Customers"
	SegmentBigSpender = "Big Spenders"
	SegmentFrequent   = "Frequent Buyers"
	SegmentOccasional = "Occasional Buyers"
)

// Индексы признаков в векторе кластеризации
const (
	featTotalOrders = iota
	featTotalSpent
	featAvgOrderValue
	featTotalItems
	featUniqueProducts
	featTenureDays
	featItemsPerOrder
	featureCount
)

// Segment кластеризует клиентов по поведенческим признакам и присваивает
// каждому кластеру смысловую метку, сравнивая средние кластера со
// средними по всей выборке. Метки зависят от данных и не привязаны к
// номеру кластера.
func Segment(features []models.CustomerFeatureRow, k int, seed int64) ([]models.ClusterAssignment, error) {
	if k < 1 {
		return nil, &models.DegenerateInputError{Stage: "segmentation", Reason: "cluster count must be positive"}
	}
	if len(features) < k {
		return nil, &models.DegenerateInputError{
			Stage:  "segmentation",
			Reason: fmt.Sprintf("%d customers cannot form %d clusters", len(features), k),
		}
	}

	raw := make([][]float64, len(features))
	for i, f := range features {
		raw[i] = []float64{
			float64(f.TotalOrders),
			f.TotalSpent,
			f.AvgOrderValue,
			float64(f.TotalItems),
			float64(f.UniqueProducts),
			float64(f.DaysSinceFirstPurchase),
			f.AvgItemsPerOrder,
		}
	}

	assign := kmeans(standardize(meanImpute(raw)), k, seed)

	// Средние кластеров в исходных единицах
	clusterSums := make([][]float64, k)
	clusterCounts := make([]int, k)
	populationMean := make([]float64, featureCount)
	for j := range clusterSums {
		clusterSums[j] = make([]float64, featureCount)
	}
	for i, row := range raw {
		clusterCounts[assign[i]]++
		for d, v := range row {
			clusterSums[assign[i]][d] += v
			populationMean[d] += v
		}
	}
	for d := range populationMean {
		populationMean[d] /= float64(len(raw))
	}

	labels := make([]string, k)
	for j := 0; j < k; j++ {
		if clusterCounts[j] == 0 {
			labels[j] = SegmentOccasional
			continue
		}
		meanSpent := clusterSums[j][featTotalSpent] / float64(clusterCounts[j])
		meanOrders := clusterSums[j][featTotalOrders] / float64(clusterCounts[j])
		labels[j] = labelFor(meanSpent > populationMean[featTotalSpent], meanOrders > populationMean[featTotalOrders])
	}

	assignments := make([]models.ClusterAssignment, len(features))
	for i, f := range features {
		assignments[i] = models.ClusterAssignment{
			CustomerID: f.CustomerID,
			ClusterID:  assign[i],
			Segment:    labels[assign[i]],
		}
	}
	return assignments, nil
}

func labelFor(spendAbove, ordersAbove bool) string {
	switch {
	case spendAbove && ordersAbove:
		return SegmentHighValue
	case spendAbove:
		return SegmentBigSpender
	case ordersAbove:
		return SegmentFrequent
	default:
		return SegmentOccasional
	}
}

// meanImpute заменяет NaN средним значением столбца
func meanImpute(rows [][]float64) [][]float64 {
	if len(rows) == 0 {
		return rows
	}
	dim := len(rows[0])
	for d := 0; d < dim; d++ {
		var sum float64
		var count int
		for i := range rows {
			if !math.IsNaN(rows[i][d]) {
				sum += rows[i][d]
				count++
			}
		}
		mean := 0.0
		if count > 0 {
			mean = sum / float64(count)
		}
		for i := range rows {
			if math.IsNaN(rows[i][d]) {
				rows[i][d] = mean
			}
		}
	}
	return rows
}

// standardize приводит каждый признак к нулевому среднему и единичной
// дисперсии по статистикам текущей выборки. Признаки с нулевой
// дисперсией остаются нулями.
func standardize(rows [][]float64) [][]float64 {
	if len(rows) == 0 {
		return rows
	}
	n := float64(len(rows))
	dim := len(rows[0])
	scaled := make([][]float64, len(rows))
	for i := range scaled {
		scaled[i] = make([]float64, dim)
	}

	for d := 0; d < dim; d++ {
		var sum float64
		for i := range rows {
			sum += rows[i][d]
		}
		mean := sum / n

		var variance float64
		for i := range rows {
			diff := rows[i][d] - mean
			variance += diff * diff
		}
		variance /= n
		std := math.Sqrt(variance)

		for i := range rows {
			if std > 0 {
				scaled[i][d] = (rows[i][d] - mean) / std
			}
		}
	}
	return scaled
}
