package rfm

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retail-churn-analytics/internal/models"
)

// rfmFixture строит транзакции 10 клиентов с попарно различными
// recency, frequency и monetary: клиент i делает i покупок, последняя —
// i дней до опорного времени
func rfmFixture(ref time.Time) []models.TransactionRecord {
	var transactions []models.TransactionRecord
	txID := 0
	for i := 1; i <= 10; i++ {
		for j := 0; j < i; j++ {
			txID++
			transactions = append(transactions, models.TransactionRecord{
				TransactionID: fmt.Sprintf("TXN-%06d", txID),
				CustomerID:    fmt.Sprintf("CUST-%04d", i),
				ProductID:     "PROD-0001",
				Quantity:      1,
				TotalAmount:   float64(100 + i),
				Timestamp:     ref.AddDate(0, 0, -(i + j)),
			})
		}
	}
	return transactions
}

func TestAnalyze_ScoresWithinRange(t *testing.T) {
	ref := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	rows, err := Analyze(rfmFixture(ref), ref)
	require.NoError(t, err)
	require.Len(t, rows, 10)

	for _, row := range rows {
		assert.GreaterOrEqual(t, row.R, 1)
		assert.LessOrEqual(t, row.R, 5)
		assert.GreaterOrEqual(t, row.F, 1)
		assert.LessOrEqual(t, row.F, 5)
		assert.GreaterOrEqual(t, row.M, 1)
		assert.LessOrEqual(t, row.M, 5)
		assert.Equal(t, fmt.Sprintf("%d%d%d", row.R, row.F, row.M), row.RFMScore)
		assert.NotEmpty(t, row.Segment)
	}
}

func TestAnalyze_QuintilesAreBalanced(t *testing.T) {
	ref := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	rows, err := Analyze(rfmFixture(ref), ref)
	require.NoError(t, err)

	// 10 попарно различных значений на 5 бинов: ровно по 2 в каждом
	rCounts := make(map[int]int)
	fCounts := make(map[int]int)
	mCounts := make(map[int]int)
	for _, row := range rows {
		rCounts[row.R]++
		fCounts[row.F]++
		mCounts[row.M]++
	}
	for score := 1; score <= 5; score++ {
		assert.Equal(t, 2, rCounts[score], "R score %d", score)
		assert.Equal(t, 2, fCounts[score], "F score %d", score)
		assert.Equal(t, 2, mCounts[score], "M score %d", score)
	}
}

func TestAnalyze_RecencyInverted(t *testing.T) {
	ref := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	rows, err := Analyze(rfmFixture(ref), ref)
	require.NoError(t, err)

	// Клиент с самой свежей покупкой получает максимальный R,
	// с самой давней — минимальный
	byID := make(map[string]models.RFMRow)
	for _, row := range rows {
		byID[row.CustomerID] = row
	}
	assert.Equal(t, 5, byID["CUST-0001"].R)
	assert.Equal(t, 1, byID["CUST-0010"].R)
	assert.Equal(t, 1, byID["CUST-0001"].F)
	assert.Equal(t, 5, byID["CUST-0010"].F)
}

func TestAnalyze_ZeroReferenceUsesMaxTimestamp(t *testing.T) {
	ref := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	rows, err := Analyze(rfmFixture(ref), time.Time{})
	require.NoError(t, err)

	// Максимальная дата транзакции — ref минус 1 день, поэтому recency
	// самого свежего клиента равна нулю
	byID := make(map[string]models.RFMRow)
	for _, row := range rows {
		byID[row.CustomerID] = row
	}
	assert.Equal(t, 0, byID["CUST-0001"].Recency)
	assert.Equal(t, 9, byID["CUST-0010"].Recency)
}

func TestAnalyze_Deterministic(t *testing.T) {
	ref := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	first, err := Analyze(rfmFixture(ref), ref)
	require.NoError(t, err)
	second, err := Analyze(rfmFixture(ref), ref)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAnalyze_EmptyTransactions(t *testing.T) {
	_, err := Analyze(nil, time.Time{})
	require.Error(t, err)

	var degenerate *models.DegenerateInputError
	require.ErrorAs(t, err, &degenerate)
	assert.Equal(t, "rfm", degenerate.Stage)
}

func TestAnalyze_DegenerateDistribution(t *testing.T) {
	ref := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	// Все клиенты с одинаковыми метриками: границы бинов совпадают
	var transactions []models.TransactionRecord
	for i := 1; i <= 10; i++ {
		transactions = append(transactions, models.TransactionRecord{
			TransactionID: fmt.Sprintf("TXN-%06d", i),
			CustomerID:    fmt.Sprintf("CUST-%04d", i),
			Quantity:      1,
			TotalAmount:   100,
			Timestamp:     ref.AddDate(0, 0, -5),
		})
	}

	_, err := Analyze(transactions, ref)
	require.Error(t, err)

	var degenerate *models.DegenerateInputError
	assert.ErrorAs(t, err, &degenerate)
}

func TestAnalyze_TooFewCustomersForQuintiles(t *testing.T) {
	ref := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	transactions := []models.TransactionRecord{
		{TransactionID: "TXN-000001", CustomerID: "CUST-0001", Quantity: 1, TotalAmount: 10, Timestamp: ref.AddDate(0, 0, -1)},
		{TransactionID: "TXN-000002", CustomerID: "CUST-0002", Quantity: 1, TotalAmount: 20, Timestamp: ref.AddDate(0, 0, -2)},
	}

	_, err := Analyze(transactions, ref)
	require.Error(t, err)

	var degenerate *models.DegenerateInputError
	assert.ErrorAs(t, err, &degenerate)
}

func TestSegmentFor_RuleTable(t *testing.T) {
	tests := []struct {
		r, f, m  int
		expected string
	}{
		{5, 5, 5, SegmentChampions},
		{4, 4, 4, SegmentChampions},
		{4, 4, 3, SegmentLoyal},
		{3, 3, 3, SegmentLoyal},
		{3, 1, 1, SegmentAtRisk},
		{3, 2, 5, SegmentAtRisk},
		// R>=4 с низкими F и M перехватывается правилом "At Risk",
		// стоящим выше по таблице
		{4, 1, 1, SegmentAtRisk},
		{5, 1, 1, SegmentAtRisk},
		{2, 5, 5, SegmentLost},
		{1, 1, 1, SegmentLost},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, SegmentFor(tc.r, tc.f, tc.m),
			"R=%d F=%d M=%d", tc.r, tc.f, tc.m)
	}
}

func TestSegmentFor_Pure(t *testing.T) {
	for i := 0; i < 5; i++ {
		assert.Equal(t, SegmentFor(4, 4, 4), SegmentFor(4, 4, 4))
	}
}
