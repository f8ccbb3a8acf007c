package risk

import (
	"fmt"
	"math"
	"sort"

	"retail-churn-analytics/internal/models"
	"retail-churn-analytics/internal/rfm"
)

// BuildInsights агрегирует итоги анализа в плоскую сводку. Все величины
// выводятся из уже посчитанных таблиц, новых вычислений над сырыми
// данными здесь нет.
func BuildInsights(customerFeatures []models.CustomerFeatureRow, rfmRows []models.RFMRow,
	clusters []models.ClusterAssignment, churnRows []models.ChurnFeatureRow,
	riskScores []models.RiskScoreRow) models.InsightSummary {

	insights := models.InsightSummary{
		TotalCustomers:   len(customerFeatures),
		SegmentBreakdown: make(map[string]int),
		RFMBreakdown:     make(map[string]int),
	}

	var totalSpent, totalOrderValue float64
	retained := 0
	spentValues := make([]float64, len(customerFeatures))
	for i, cf := range customerFeatures {
		totalSpent += cf.TotalSpent
		totalOrderValue += cf.AvgOrderValue
		spentValues[i] = cf.TotalSpent
		if cf.DaysSinceLastPurchase <= 30 {
			retained++
		}
	}
	insights.TotalRevenue = math.Round(totalSpent*100) / 100
	if len(customerFeatures) > 0 {
		insights.AvgCustomerValue = totalSpent / float64(len(customerFeatures))
		insights.AvgOrderValue = totalOrderValue / float64(len(customerFeatures))
		insights.CustomerRetentionRate = float64(retained) / float64(len(customerFeatures))

		sort.Float64s(spentValues)
		cutoff := quantile(spentValues, 0.8)
		for _, v := range spentValues {
			if v > cutoff {
				insights.HighValueCustomers++
			}
		}
	}

	topCount := 0
	for _, c := range clusters {
		insights.SegmentBreakdown[c.Segment]++
		if insights.SegmentBreakdown[c.Segment] > topCount {
			topCount = insights.SegmentBreakdown[c.Segment]
			insights.TopSegment = c.Segment
		}
	}

	for _, r := range rfmRows {
		insights.RFMBreakdown[r.Segment]++
	}
	insights.ChampionsCount = insights.RFMBreakdown[rfm.SegmentChampions]
	insights.AtRiskCount = insights.RFMBreakdown[rfm.SegmentAtRisk]

	churned := 0
	for _, row := range churnRows {
		churned += row.IsChurned
	}
	if len(churnRows) > 0 {
		insights.ChurnRate = float64(churned) / float64(len(churnRows))
	}

	var probSum float64
	for _, score := range riskScores {
		probSum += score.ChurnProbability
		switch score.RiskLevel {
		case models.RiskHigh:
			insights.HighRiskCustomers++
		case models.RiskMedium:
			insights.MediumRiskCustomers++
		default:
			insights.LowRiskCustomers++
		}
		if score.ChurnProbability > 0.5 {
			insights.CustomersAtRisk++
		}
	}
	if len(riskScores) > 0 {
		insights.AvgChurnProbability = probSum / float64(len(riskScores))
	}

	return insights
}

// BuildRecommendations порождает список рекомендаций. Чистая функция
// сводки: по одной шаблонной строке на непустой уровень риска плюс
// фиксированные общие рекомендации.
func BuildRecommendations(insights models.InsightSummary) []string {
	var recommendations []string

	if insights.HighValueCustomers > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("Focus on %d high-value customers with VIP programs", insights.HighValueCustomers))
	}
	if insights.AtRiskCount > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("Implement retention campaigns for %d at-risk customers", insights.AtRiskCount))
	}
	if insights.ChampionsCount > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("Reward %d champion customers with exclusive offers", insights.ChampionsCount))
	}
	if insights.HighRiskCustomers > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("Implement immediate retention campaigns for %d high-risk customers", insights.HighRiskCustomers))
	}
	if insights.MediumRiskCustomers > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("Develop targeted engagement strategies for %d medium-risk customers", insights.MediumRiskCustomers))
	}
	if insights.ChurnRate > 0.2 {
		recommendations = append(recommendations,
			fmt.Sprintf("Address high churn rate (%.1f%%) through improved customer experience", insights.ChurnRate*100))
	}
	if insights.CustomerRetentionRate < 0.7 {
		recommendations = append(recommendations,
			"Improve customer retention through better engagement strategies")
	}

	recommendations = append(recommendations,
		"Implement cross-selling strategies based on customer segments",
		"Develop personalized marketing campaigns for each customer segment",
		"Enhance customer service and support to reduce churn",
	)

	return recommendations
}

func quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
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
