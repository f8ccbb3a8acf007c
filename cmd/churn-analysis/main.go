package main

import (
	"flag"
	"fmt"
	"log"
	"sort"

	"github.com/schollz/progressbar/v3"

	"retail-churn-analytics/config"
	"retail-churn-analytics/internal/models"
	"retail-churn-analytics/internal/services"
)

// Число стадий конвейера для индикатора прогресса
const pipelineStages = 8

func main() {
	customers := flag.Int("customers", 1000, "number of customers to generate")
	products := flag.Int("products", 200, "number of products to generate")
	transactions := flag.Int("transactions", 5000, "number of transactions to generate")
	seed := flag.Int64("seed", 42, "random seed for data generation and training")
	threshold := flag.Int("churn-threshold", 0, "days without purchases before a customer counts as churned (0 = from config)")
	topRisk := flag.Int("top", 10, "number of highest-risk customers to print")
	flag.Parse()

	cfg := config.Load()

	datasetService := services.NewDatasetService()
	analysisService := services.NewAnalysisService()

	fmt.Printf("Generating dataset: %d customers, %d products, %d transactions\n",
		*customers, *products, *transactions)
	if _, err := datasetService.Generate(*customers, *products, *transactions, *seed); err != nil {
		log.Fatalf("Failed to generate dataset: %v", err)
	}

	customerRows, productRows, transactionRows, ok := datasetService.Dataset()
	if !ok {
		log.Fatal("Dataset is empty after generation")
	}

	opts := services.OptionsFromConfig(&cfg.Analysis)
	opts.RandomSeed = *seed
	if *threshold > 0 {
		opts.ChurnThresholdDays = *threshold
	}

	bar := progressbar.Default(pipelineStages)
	opts.Progress = func(stage string) {
		bar.Describe(stage)
		_ = bar.Add(1)
	}

	snapshot, err := analysisService.RunAnalysis(customerRows, productRows, transactionRows, opts)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}
	_ = bar.Finish()

	printReport(snapshot, *topRisk)
}

func printReport(snapshot *models.AnalysisSnapshot, topRisk int) {
	fmt.Printf("\n=== Analysis %s ===\n", snapshot.RunID)
	fmt.Printf("Customers analyzed: %d\n", snapshot.Insights.TotalCustomers)
	fmt.Printf("Total revenue: %.2f\n", snapshot.Insights.TotalRevenue)
	fmt.Printf("Churn rate: %.1f%%\n", snapshot.Insights.ChurnRate*100)
	fmt.Printf("Retention rate: %.1f%%\n", snapshot.Insights.CustomerRetentionRate*100)

	fmt.Println("\nModel comparison:")
	for _, row := range snapshot.ModelComparison {
		marker := " "
		if row.Best {
			marker = "*"
		}
		fmt.Printf("  %s %-20s accuracy=%.3f auc=%.3f\n", marker, row.Model, row.Accuracy, row.AUC)
	}

	fmt.Println("\nRFM segments:")
	for segment, count := range snapshot.Insights.RFMBreakdown {
		fmt.Printf("  %-15s %d\n", segment, count)
	}

	fmt.Printf("\nRisk levels: high=%d medium=%d low=%d\n",
		snapshot.Insights.HighRiskCustomers,
		snapshot.Insights.MediumRiskCustomers,
		snapshot.Insights.LowRiskCustomers)

	if topRisk > len(snapshot.RiskScores) {
		topRisk = len(snapshot.RiskScores)
	}
	if topRisk > 0 {
		fmt.Printf("\nTop %d customers by churn risk:\n", topRisk)
		scores := make([]models.RiskScoreRow, len(snapshot.RiskScores))
		copy(scores, snapshot.RiskScores)
		sort.Slice(scores, func(i, j int) bool {
			return scores[i].ChurnProbability > scores[j].ChurnProbability
		})
		for _, score := range scores[:topRisk] {
			fmt.Printf("  %-12s p=%.3f %s\n", score.CustomerID, score.ChurnProbability, score.RiskLevel)
		}
	}

	fmt.Println("\nRecommendations:")
	for _, rec := range snapshot.Recommendations {
		fmt.Printf("  - %s\n", rec)
	}
}
