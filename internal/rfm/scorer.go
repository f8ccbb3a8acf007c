package rfm

import (
	"fmt"
	"math"
	"sort"
	"time"

	"retail-churn-analytics/internal/models"
)

// Analyze строит RFM-таблицу по транзакциям. referenceTime — опорное
// время recency; нулевое значение заменяется максимальной датой
// транзакции, то есть recency считается относительно горизонта самих
// данных, а не настенных часов.
func Analyze(transactions []models.TransactionRecord, referenceTime time.Time) ([]models.RFMRow, error) {
	if len(transactions) == 0 {
		return nil, &models.DegenerateInputError{Stage: "rfm", Reason: "no transactions"}
	}

	if referenceTime.IsZero() {
		for _, tx := range transactions {
			if tx.Timestamp.After(referenceTime) {
				referenceTime = tx.Timestamp
			}
		}
	}

	type metrics struct {
		last      time.Time
		frequency int
		monetary  float64
	}
	byCustomer := make(map[string]*metrics)
	for _, tx := range transactions {
		m, ok := byCustomer[tx.CustomerID]
		if !ok {
			m = &metrics{last: tx.Timestamp}
			byCustomer[tx.CustomerID] = m
		}
		m.frequency++
		m.monetary += tx.TotalAmount
		if tx.Timestamp.After(m.last) {
			m.last = tx.Timestamp
		}
	}

	rows := make([]models.RFMRow, 0, len(byCustomer))
	for customerID, m := range byCustomer {
		rows = append(rows, models.RFMRow{
			CustomerID: customerID,
			Recency:    int(referenceTime.Sub(m.last).Hours() / 24),
			Frequency:  m.frequency,
			Monetary:   math.Round(m.monetary*100) / 100,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CustomerID < rows[j].CustomerID })

	recency := make([]float64, len(rows))
	frequency := make([]float64, len(rows))
	monetary := make([]float64, len(rows))
	for i, row := range rows {
		recency[i] = float64(row.Recency)
		frequency[i] = float64(row.Frequency)
		monetary[i] = row.Monetary
	}

	rBins, err := quantileBins(recency, 5)
	if err != nil {
		return nil, &models.DegenerateInputError{Stage: "rfm", Reason: fmt.Sprintf("recency: %v", err)}
	}
	fBins, err := quantileBins(frequency, 5)
	if err != nil {
		return nil, &models.DegenerateInputError{Stage: "rfm", Reason: fmt.Sprintf("frequency: %v", err)}
	}
	mBins, err := quantileBins(monetary, 5)
	if err != nil {
		return nil, &models.DegenerateInputError{Stage: "rfm", Reason: fmt.Sprintf("monetary: %v", err)}
	}

	for i := range rows {
		// Recency инвертируется: чем свежее покупка, тем выше оценка
		rows[i].R = 5 - rBins[i]
		rows[i].F = fBins[i] + 1
		rows[i].M = mBins[i] + 1
		rows[i].RFMScore = fmt.Sprintf("%d%d%d", rows[i].R, rows[i].F, rows[i].M)
		rows[i].Segment = SegmentFor(rows[i].R, rows[i].F, rows[i].M)
	}

	return rows, nil
}

// quantileBins разбивает значения на q равнонаселенных бинов и
// возвращает индекс бина (0..q-1) для каждого значения. Совпадающие
// границы бинов означают вырожденное распределение и считаются ошибкой,
// а не поводом молча схлопнуть бины.
func quantileBins(values []float64, q int) ([]int, error) {
	n := len(values)
	if n < q {
		return nil, fmt.Errorf("population of %d is too small for %d bins", n, q)
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	edges := make([]float64, q+1)
	for i := 0; i <= q; i++ {
		edges[i] = quantile(sorted, float64(i)/float64(q))
	}
	for i := 1; i <= q; i++ {
		if edges[i] <= edges[i-1] {
			return nil, fmt.Errorf("bin edges are not unique (too few distinct values for %d bins)", q)
		}
	}

	bins := make([]int, n)
	for i, v := range values {
		// Интервалы (edges[j-1], edges[j]], нижняя граница первого
		// интервала включается
		bin := q - 1
		for j := 1; j <= q; j++ {
			if v <= edges[j] {
				bin = j - 1
				break
			}
		}
		bins[i] = bin
	}
	return bins, nil
}

// quantile возвращает p-квантиль отсортированного среза с линейной
// интерполяцией
func quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := p * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}
	frac := pos - float64(lower)
	return sorted[lower]*(1-frac) + sorted[upper]*frac
}
