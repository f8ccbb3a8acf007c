package segmentation

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retail-churn-analytics/internal/models"
)

// twoGroupFixture строит две хорошо разделенные группы клиентов:
// крупных покупателей и разовых
func twoGroupFixture() []models.CustomerFeatureRow {
	var rows []models.CustomerFeatureRow
	for i := 0; i < 4; i++ {
		rows = append(rows, models.CustomerFeatureRow{
			CustomerID:             fmt.Sprintf("CUST-B%02d", i),
			TotalOrders:            20 + i,
			TotalSpent:             5000 + float64(i*100),
			AvgOrderValue:          250,
			TotalItems:             60 + i,
			UniqueProducts:         15,
			DaysSinceFirstPurchase: 300,
			AvgItemsPerOrder:       3,
		})
	}
	for i := 0; i < 4; i++ {
		rows = append(rows, models.CustomerFeatureRow{
			CustomerID:             fmt.Sprintf("CUST-S%02d", i),
			TotalOrders:            1 + i%2,
			TotalSpent:             50 + float64(i*10),
			AvgOrderValue:          40,
			TotalItems:             2,
			UniqueProducts:         1,
			DaysSinceFirstPurchase: 30,
			AvgItemsPerOrder:       1,
		})
	}
	return rows
}

func TestSegment_SeparatesGroups(t *testing.T) {
	assignments, err := Segment(twoGroupFixture(), 2, 42)
	require.NoError(t, err)
	require.Len(t, assignments, 8)

	// Все крупные покупатели в одном кластере, все разовые — в другом
	bigCluster := assignments[0].ClusterID
	for i := 0; i < 4; i++ {
		assert.Equal(t, bigCluster, assignments[i].ClusterID)
	}
	smallCluster := assignments[4].ClusterID
	assert.NotEqual(t, bigCluster, smallCluster)
	for i := 4; i < 8; i++ {
		assert.Equal(t, smallCluster, assignments[i].ClusterID)
	}
}

func TestSegment_LabelsFollowClusterMeans(t *testing.T) {
	assignments, err := Segment(twoGroupFixture(), 2, 42)
	require.NoError(t, err)

	// Кластер с тратами и заказами выше среднего по выборке получает
	// метку High-Value, противоположный — Occasional
	assert.Equal(t, SegmentHighValue, assignments[0].Segment)
	assert.Equal(t, SegmentOccasional, assignments[4].Segment)
}

func TestSegment_Deterministic(t *testing.T) {
	first, err := Segment(twoGroupFixture(), 2, 42)
	require.NoError(t, err)
	second, err := Segment(twoGroupFixture(), 2, 42)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSegment_ClusterIDsWithinRange(t *testing.T) {
	assignments, err := Segment(twoGroupFixture(), 3, 42)
	require.NoError(t, err)

	for _, a := range assignments {
		assert.GreaterOrEqual(t, a.ClusterID, 0)
		assert.Less(t, a.ClusterID, 3)
		assert.NotEmpty(t, a.Segment)
		assert.NotEmpty(t, a.CustomerID)
	}
}

func TestSegment_InvalidClusterCount(t *testing.T) {
	_, err := Segment(twoGroupFixture(), 0, 42)
	require.Error(t, err)

	var degenerate *models.DegenerateInputError
	require.ErrorAs(t, err, &degenerate)
	assert.Equal(t, "segmentation", degenerate.Stage)
}

func TestSegment_FewerCustomersThanClusters(t *testing.T) {
	rows := twoGroupFixture()[:3]
	_, err := Segment(rows, 4, 42)
	require.Error(t, err)

	var degenerate *models.DegenerateInputError
	assert.ErrorAs(t, err, &degenerate)
}

func TestStandardize_ZeroVarianceColumn(t *testing.T) {
	rows := [][]float64{
		{1, 5},
		{1, 7},
		{1, 9},
	}
	scaled := standardize(rows)

	// Столбец с нулевой дисперсией остается нулевым
	for i := range scaled {
		assert.Equal(t, 0.0, scaled[i][0])
	}
	assert.Less(t, scaled[0][1], 0.0)
	assert.Greater(t, scaled[2][1], 0.0)
}

func TestMeanImpute(t *testing.T) {
	rows := [][]float64{
		{2, 10},
		{math.NaN(), 20},
		{4, 30},
	}
	imputed := meanImpute(rows)
	assert.Equal(t, 3.0, imputed[1][0])
	assert.Equal(t, 20.0, imputed[1][1])
}
